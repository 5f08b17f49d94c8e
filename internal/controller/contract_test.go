package controller

import (
	"reflect"
	"testing"

	"overseer/pkg/overseer"
)

type structInfo struct {
	Name         string
	FieldTypeMap map[string]string
}

func getStructFieldInfo(v any) structInfo {
	result := structInfo{FieldTypeMap: make(map[string]string)}

	val := reflect.ValueOf(v)
	typ := reflect.TypeOf(v)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return result
	}
	result.Name = typ.Name()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldName := field.Name
		var jsonTagValue *string = nil
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			jsonTagValue = &fieldName
		} else if jsonTag != "-" {
			jsonTagValue = &jsonTag
		}
		if jsonTagValue != nil {
			result.FieldTypeMap[*jsonTagValue] = field.Type.String()
		}
	}
	return result
}

func validateModelContract(i structInfo, j structInfo, t *testing.T) {
	for m, n := range i.FieldTypeMap {
		o, ok := j.FieldTypeMap[m]
		if !ok {
			t.Errorf("%s[%s] doesn't exist in %s", i.Name, m, j.Name)
			continue
		}
		if n != o {
			t.Errorf("%s[%s]'s type[%s] doesn't match %s[%s]'s type[%s]", i.Name, m, n, j.Name, m, o)
		}
	}
}

func TestSessionSdkContracts(t *testing.T) {
	validateModelContract(
		getStructFieldInfo(handleCreateSessionV1Input{}),
		getStructFieldInfo(overseer.CreateSessionV1Input{}),
		t,
	)
	validateModelContract(
		getStructFieldInfo(handleDeleteSessionV1Output{}),
		getStructFieldInfo(overseer.DeleteSessionV1Output{}),
		t,
	)
}

func TestTicketSdkContracts(t *testing.T) {
	validateModelContract(
		getStructFieldInfo(handleUpdateTicketV1Input{}),
		getStructFieldInfo(overseer.UpdateTicketV1Input{}),
		t,
	)
	validateModelContract(
		getStructFieldInfo(handleCreateTicketCommentV1Input{}),
		getStructFieldInfo(overseer.CreateTicketCommentV1Input{}),
		t,
	)
	validateModelContract(
		getStructFieldInfo(handleCreateTicketCommentV1Output{}),
		getStructFieldInfo(overseer.CreateTicketCommentV1Output{}),
		t,
	)
}

func TestFeatureFlagSdkContracts(t *testing.T) {
	validateModelContract(
		getStructFieldInfo(handleSetFeatureFlagV1Input{}),
		getStructFieldInfo(overseer.SetFeatureFlagV1Input{}),
		t,
	)
}

func TestDeprovisionSdkContracts(t *testing.T) {
	validateModelContract(
		getStructFieldInfo(handleDeprovisionOrgV1Input{}),
		getStructFieldInfo(overseer.DeprovisionOrgV1Input{}),
		t,
	)
	validateModelContract(
		getStructFieldInfo(deprovisionFailureResponse{}),
		getStructFieldInfo(overseer.DeprovisionError{}),
		t,
	)
}
