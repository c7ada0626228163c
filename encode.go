package czkcurve

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Curve names used in the quant JSON metadata, depending on where the
// observations came from.
const (
	LiveCurveName     = "CZK_GOVT_BOND_LIVE"
	SnapshotCurveName = "CZK_GOVT_BOND_SNAPSHOT"
)

// Metadata describes a quant JSON document.
type Metadata struct {
	Name          string
	Interpolation string
	Convention    string
}

// NewMetadata returns the document metadata for a curve of the given name.
// Interpolation and convention are fixed properties of this exporter.
func NewMetadata(name string) Metadata {
	return Metadata{
		Name:          name,
		Interpolation: "Cubic Spline",
		Convention:    "ACT/360",
	}
}

// number renders a decimal as a bare JSON number. decimal.Decimal marshals
// itself as a quoted string, which quant consumers do not expect.
func number(d decimal.Decimal) json.Number { return json.Number(d.String()) }

// EncodeQuantJSON writes the table as a quant-ready JSON document:
//
//	{
//	  "curve_metadata": {"name": ..., "interpolation": ..., "convention": ...},
//	  "data": [{"tenor": ..., "days": ..., "rate_pct": ..., "df": ...}, ...]
//	}
//
// Field order is part of the format and is preserved by the object writer.
func EncodeQuantJSON(w io.Writer, meta Metadata, t Table) error {
	var mw jsonObjectWriter
	meta_, err := mw.
		Field("name", meta.Name).
		Field("interpolation", meta.Interpolation).
		Field("convention", meta.Convention).
		Close()
	if err != nil {
		return fmt.Errorf("encoding curve metadata: %w", err)
	}

	var data bytes.Buffer
	data.WriteString("[")
	for i, o := range t {
		var rw jsonObjectWriter
		rec, err := rw.
			Field("tenor", o.Tenor).
			Field("days", o.Days()).
			Field("rate_pct", number(decimal.NewFromFloat(o.Rate))).
			Field("df", number(decimal.NewFromFloat(o.DiscountFactor()).Round(8))).
			Close()
		if err != nil {
			return fmt.Errorf("encoding observation %q: %w", o.Tenor, err)
		}
		if i > 0 {
			data.WriteString(",")
		}
		data.Write(rec)
	}
	data.WriteString("]")

	var dw jsonObjectWriter
	doc, err := dw.
		FieldRaw("curve_metadata", meta_).
		FieldRaw("data", data.Bytes()).
		Close()
	if err != nil {
		return fmt.Errorf("encoding quant document: %w", err)
	}
	_, err = w.Write(append(doc, '\n'))
	return err
}
