package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlexString decodes a category reference that legacy documents stored either
// as an ObjectID or as a plain name/slug string. ObjectIDs decode to their hex
// form so lookups stay string-keyed.
type FlexString string

func (s *FlexString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*s = ""
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*s = FlexString(strings.TrimSpace(value))
		return nil
	case bsontype.ObjectID:
		var id primitive.ObjectID
		if err := bson.UnmarshalValue(t, data, &id); err != nil {
			return err
		}
		*s = FlexString(id.Hex())
		return nil
	default:
		return fmt.Errorf("cannot decode %s into FlexString", t)
	}
}

func (s FlexString) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(s))
}

// StringList accepts a multi-tag field stored as an array, a single string, a
// single ObjectID, or null, so mixed legacy documents never fail a decode.
type StringList []string

func (s *StringList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*s = nil
		return nil
	case bsontype.Array:
		var values []FlexString
		if err := bson.UnmarshalValue(t, data, &values); err != nil {
			return err
		}
		out := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				out = append(out, string(v))
			}
		}
		*s = out
		return nil
	case bsontype.String, bsontype.ObjectID:
		var value FlexString
		if err := value.UnmarshalBSONValue(t, data); err != nil {
			return err
		}
		if value == "" {
			*s = []string{}
			return nil
		}
		*s = []string{string(value)}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into StringList", t)
	}
}

// MarshalBSONValue always stores the list as an array, keeping new writes
// consistent even when legacy documents used a scalar value.
func (s StringList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue([]string(s))
}
