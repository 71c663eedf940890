package episode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a single normalized cell. Number columns carry the parsed integer
// when the text was numeric; otherwise only Text is meaningful.
type Value struct {
	Text  string
	Int   int
	IsInt bool
}

func String(s string) Value {
	return Value{Text: s}
}

func Int(n int) Value {
	return Value{Text: strconv.Itoa(n), Int: n, IsInt: true}
}

func (v Value) String() string {
	if v.IsInt {
		return strconv.Itoa(v.Int)
	}
	return v.Text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsInt {
		return []byte(strconv.Itoa(v.Int)), nil
	}
	return json.Marshal(v.Text)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("value: want string or integer, got %s", b)
	}
	*v = Int(n)
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	if v.IsInt {
		return v.Int, nil
	}
	return v.Text, nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!int" {
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*v = Int(n)
		return nil
	}
	*v = String(node.Value)
	return nil
}
