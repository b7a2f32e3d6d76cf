package rj

// Value is a single JSON value. Exactly one of the concrete types
// String, Number, Boolean, Null, Object or Array holds.
type Value interface {
	isValue()
}

// String is a JSON string value.
type String string

// Number is a JSON number. All numbers are float64, matching the
// grammar's single number production.
type Number float64

// Boolean is a JSON true or false.
type Boolean bool

// Null is the JSON null literal.
type Null struct{}

// Array is an ordered list of values.
type Array []Value

// Member is a single object entry.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered collection of members. Order is the order keys
// first appeared in the input.
type Object []Member

func (String) isValue()  {}
func (Number) isValue()  {}
func (Boolean) isValue() {}
func (Null) isValue()    {}
func (Array) isValue()   {}
func (Object) isValue()  {}

// Get returns the value for key and whether it is present.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// set inserts key with v, replacing the value in place if the key is
// already present.
func (o Object) set(key string, v Value) Object {
	for i, m := range o {
		if m.Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}
