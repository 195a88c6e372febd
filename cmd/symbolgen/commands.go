package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ericlevine/printsymbol"
)

var errInvalidData = errors.New("data cannot be encoded")

func (a *app) barcodeCmd() *cobra.Command {
	var (
		typ    string
		width  int
		height int
		hri    bool
	)
	cmd := &cobra.Command{
		Use:   "barcode DATA",
		Short: "Encode a linear barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := a.baseRequest(args[0])
			if cmd.Flags().Changed("type") {
				sym, ok := printsymbol.ParseSymbology(typ)
				if !ok || !sym.IsLinear() {
					return fmt.Errorf("%q is not a linear symbology: %w", typ, printsymbol.ErrUnsupported)
				}
				req.Symbology = sym
			}
			if !req.Symbology.IsLinear() {
				return fmt.Errorf("%s is not a linear symbology, use the qrcode command", req.Symbology)
			}
			if cmd.Flags().Changed("width") {
				req.ModuleWidth = width
			}
			if cmd.Flags().Changed("height") {
				req.BarHeight = height
			}
			if cmd.Flags().Changed("hri") {
				req.HRI = hri
			}

			res, err := a.encode(req)
			if err != nil {
				return err
			}
			if err := a.emit([]result{res}, false); err != nil {
				return err
			}
			if res.Error != "" {
				return fmt.Errorf("%s %q: %w", req.Symbology, req.Data, errInvalidData)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "symbology: upc, ean, jan, code39, itf, codabar (nw7), code93, code128")
	cmd.Flags().IntVarP(&width, "width", "w", printsymbol.DefaultModuleWidth, "narrow module width in dots (2-4)")
	cmd.Flags().IntVar(&height, "height", printsymbol.DefaultBarHeight, "bar height in dots")
	cmd.Flags().BoolVar(&hri, "hri", false, "print human readable text")
	return cmd
}

func (a *app) qrcodeCmd() *cobra.Command {
	var (
		level string
		cell  int
	)
	cmd := &cobra.Command{
		Use:   "qrcode DATA",
		Short: "Encode a QR Code symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := a.baseRequest(args[0])
			req.Symbology = printsymbol.QRCode
			if cmd.Flags().Changed("level") {
				l, ok := printsymbol.ParseErrorLevel(level)
				if !ok {
					return fmt.Errorf("error level %q: %w", level, printsymbol.ErrUnsupported)
				}
				req.Level = l
			}
			if cmd.Flags().Changed("cell") {
				req.CellSize = cell
			}
			res, err := a.encode(req)
			if err != nil {
				return err
			}
			return a.emit([]result{res}, false)
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", "l", "error correction level: l, m, q or h")
	cmd.Flags().IntVarP(&cell, "cell", "c", printsymbol.DefaultCellSize, "module size in dots (3-8)")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Encode every request in a YAML file",
		Long: `Encode every request in a YAML file. The file holds a list of requests
with the keys data, type, width, height, hri, cell, level and quietZone.
Missing keys take their value from --option and --quiet-zone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := a.readBatch(args[0])
			if err != nil {
				return err
			}
			results := make([]result, 0, len(reqs))
			failed := 0
			for i, req := range reqs {
				res, err := a.encode(req)
				if err != nil {
					return fmt.Errorf("request %d: %w", i, err)
				}
				if res.Error != "" {
					a.log.Warn("request not encoded", "index", i, "type", req.Symbology, "data", req.Data)
					failed++
				}
				results = append(results, res)
			}
			if err := a.emit(results, true); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d requests: %w", failed, len(reqs), errInvalidData)
			}
			return nil
		},
	}
}

// baseRequest applies the option string and quiet zone setting to data.
func (a *app) baseRequest(data string) printsymbol.Request {
	req := printsymbol.ParseOptions(a.cfg.Options)
	req.Data = data
	req.QuietZone = a.cfg.QuietZone
	return req
}

func (a *app) readBatch(path string) ([]printsymbol.Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nodes []yaml.Node
	if err := yaml.Unmarshal(b, &nodes); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	reqs := make([]printsymbol.Request, len(nodes))
	for i := range nodes {
		reqs[i] = a.baseRequest("")
		if err := nodes[i].Decode(&reqs[i]); err != nil {
			return nil, fmt.Errorf("%s: request %d: %w", path, i, err)
		}
	}
	a.log.Debug("read batch", "path", path, "requests", len(reqs))
	return reqs, nil
}

// encode dispatches req to the registered writer. Data the symbology cannot
// encode is reported in the result, not as an error.
func (a *app) encode(req printsymbol.Request) (result, error) {
	res := result{Type: req.Symbology, Data: req.Data}
	if req.Symbology.IsLinear() {
		form, err := printsymbol.EncodeBarcode(req)
		if err != nil {
			return res, err
		}
		if !form.Valid() {
			res.Error = errInvalidData.Error()
			return res, nil
		}
		a.log.Debug("encoded barcode",
			"type", req.Symbology, "width", form.Width, "height", form.Height, "bars", len(form.Bars()))
		res.Form = form
		return res, nil
	}

	m, err := printsymbol.EncodeMatrix(req)
	if err != nil {
		return res, err
	}
	a.log.Debug("encoded matrix",
		"version", m.Version, "level", m.Level, "mask", m.Mask, "size", m.Size())
	res.Matrix = newMatrixOutput(m)
	return res, nil
}
