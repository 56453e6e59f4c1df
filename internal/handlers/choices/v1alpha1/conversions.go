package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

// respond renders v through its json tags into a Struct
func respond(v map[string]any) (*structpb.Struct, error) {
	out, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// ToStruct converts any json-taggable value into a Struct
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to build response struct")
	}
	return out, nil
}

// FromStruct decodes a Struct into a json-tagged target
func FromStruct(s *structpb.Struct, target any) error {
	data, err := protojson.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to encode struct")
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.Wrap(err, "failed to decode struct")
	}
	return nil
}

// decodeSelection reads the selection object of a resolve request. A missing
// selection yields nil.
func decodeSelection(choiceID string, value *structpb.Value) (*choice.Selection, error) {
	if value == nil {
		return nil, nil
	}
	if _, isNull := value.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, nil
	}
	fields := value.GetStructValue()
	if fields == nil {
		return nil, errors.InvalidSelection(choiceID, value.AsInterface(), "selection must be an object")
	}

	selection := &choice.Selection{}
	if err := FromStruct(fields, selection); err != nil {
		return nil, errors.InvalidSelection(choiceID, fields.AsMap(), "selection is malformed")
	}
	return selection, nil
}
