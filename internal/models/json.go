package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/netip"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSONList is an ordered list of JSON objects stored in a single column.
type JSONList []datatypes.JSONMap

// Value implements driver.Valuer.
func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]datatypes.JSONMap(l))
	return string(b), err
}

// Scan implements sql.Scanner.
func (l *JSONList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("JSONList: unsupported scan type %T", value)
	}

	var list []datatypes.JSONMap
	if err := decodeJSON(raw, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// GormDataType is the generic data type used by GORM.
func (JSONList) GormDataType() string {
	return "json"
}

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL does not support the 'json' data type.
func (JSONList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonColumnType(db)
}

func jsonColumnType(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// IPAddress is a network address column, INET on PostgreSQL.
type IPAddress struct {
	netip.Addr
}

// ParseIPAddress parses an IPv4 or IPv6 address.
func ParseIPAddress(s string) (IPAddress, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPAddress{}, err
	}
	return IPAddress{Addr: addr}, nil
}

// Value implements driver.Valuer.
func (a IPAddress) Value() (driver.Value, error) {
	if !a.IsValid() {
		return nil, nil
	}
	return a.String(), nil
}

// Scan implements sql.Scanner.
func (a *IPAddress) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case nil:
		*a = IPAddress{}
		return nil
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("IPAddress: unsupported scan type %T", value)
	}

	// PostgreSQL INET renders host addresses with a prefix length.
	if prefix, err := netip.ParsePrefix(s); err == nil {
		*a = IPAddress{Addr: prefix.Addr()}
		return nil
	}
	parsed, err := ParseIPAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// GormDataType is the generic data type used by GORM.
func (IPAddress) GormDataType() string {
	return "string"
}

// GormDBDataType maps the address to INET where the dialect has it.
func (IPAddress) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "INET"
	}
	return "VARCHAR(45)"
}

var (
	errNotJSON      = errors.New("value is not JSON encodable")
	errTrailingJSON = errors.New("unexpected data after JSON value")
)

// normalizeJSON deep-copies v through a JSON round trip so the result is
// built only from maps, slices and scalars, with numbers kept verbatim.
// Raw JSON input ([]byte, json.RawMessage) is decoded rather than encoded.
func normalizeJSON(v any) (any, error) {
	var raw []byte
	switch t := v.(type) {
	case json.RawMessage:
		raw = t
	case []byte:
		raw = t
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, errNotJSON
		}
		raw = b
	}

	var out any
	if err := decodeJSON(raw, &out); err != nil {
		return nil, errNotJSON
	}
	return out, nil
}

func decodeJSON(raw []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingJSON
	}
	return nil
}
