package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFlexStringDecodesObjectIDToHex(t *testing.T) {
	id := primitive.NewObjectID()
	typ, data, err := bson.MarshalValue(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var value FlexString
	if err := value.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(value) != id.Hex() {
		t.Fatalf("expected %s, got %s", id.Hex(), value)
	}
}

func TestFlexStringDecodesAndTrimsString(t *testing.T) {
	typ, data, err := bson.MarshalValue("  Electronics ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var value FlexString
	if err := value.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if value != "Electronics" {
		t.Fatalf("expected trimmed value, got %q", value)
	}
}

func TestStringListDecodesScalarAndArray(t *testing.T) {
	typ, data, err := bson.MarshalValue("Fashion")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var single StringList
	if err := single.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal scalar: %v", err)
	}
	if len(single) != 1 || single[0] != "Fashion" {
		t.Fatalf("expected [Fashion], got %v", single)
	}

	typ, data, err = bson.MarshalValue([]interface{}{"Fashion", primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("marshal array: %v", err)
	}
	var list StringList
	if err := list.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if len(list) != 2 || list[0] != "Fashion" {
		t.Fatalf("expected two entries starting with Fashion, got %v", list)
	}
}
