package bignumberx

import (
	"github.com/globalsign/mgo/bson"
)

// GetBSON converts v to the BSON Decimal128 wire type via its plain-string
// form. Decimal128 has no representation for values whose adjusted exponent
// falls outside its narrower range; ParseDecimal128 reports that case.
func (v BigDecimal) GetBSON() (interface{}, error) {
	return bson.ParseDecimal128(v.ToPlainString(nil))
}

// SetBSON parses a BSON Decimal128 value into v. NaN and Infinity, which
// Decimal128 can represent but BigDecimal cannot, are rejected.
func (v *BigDecimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return err
	}
	s := w.String()
	switch s {
	case "NaN", "Infinity", "-Infinity":
		return newErr(Arithmetic, "SetBSON", "cannot represent %s as a BigDecimal", s)
	}
	d, err := ParseBigDecimal(s, nil)
	if err != nil {
		return err
	}
	*v = d
	return nil
}
