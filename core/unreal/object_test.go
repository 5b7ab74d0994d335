package unreal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"SimpleKey",
			`{"ItemToCreate_4_842F5059497E898D938220BCCC148B08": 1}`,
			`{"ItemToCreate": 1}`,
		},
		{
			"UnderscoreInName",
			`{"BulletSpread_Min_38_08ADC0BA4BEA02135BE0438A60AE5725": 0.5}`,
			`{"BulletSpread_Min": 0.5}`,
		},
		{
			"ArraySuffix",
			`{"Slots_3_0123456789ABCDEF0123456789ABCDEF[2]": []}`,
			`{"Slots": []}`,
		},
		{
			"PlainKeyUntouched",
			`{"RowName": "glue"}`,
			`{"RowName": "glue"}`,
		},
		{
			"ValueUntouched",
			`{"Tag": "Count_6_4C6C5BFB4956F9C29A5C2BB6F28B7690"}`,
			`{"Tag": "Count_6_4C6C5BFB4956F9C29A5C2BB6F28B7690"}`,
		},
		{
			"LowercaseHexIsNotGenerated",
			`{"Count_6_4c6c5bfb4956f9c29a5c2bb6f28b7690": 1}`,
			`{"Count_6_4c6c5bfb4956f9c29a5c2bb6f28b7690": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(CleanKeys([]byte(tt.in))))
		})
	}
}

func TestObject_KeysKeepDocumentOrder(t *testing.T) {
	obj := ParseObject(`{"zeta": 1, "alpha": 2, "mid": 3}`)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())
}

func TestObject_ArrayIsIndexKeyed(t *testing.T) {
	obj := ParseObject(`[{"Name": "a"}, {"Name": "b"}]`)

	assert.Equal(t, []string{"0", "1"}, obj.Keys())
	second, ok := obj.Child("1")
	require.True(t, ok)
	assert.Equal(t, "b", second.StringField("Name"))

	elems := obj.Array()
	require.Len(t, elems, 2)
	assert.Equal(t, "a", elems[0].StringField("Name"))
}

func TestObject_ChildIsMemoized(t *testing.T) {
	obj := ParseObject(`{"Rows": {"a": {}}}`)

	first, ok := obj.Child("Rows")
	require.True(t, ok)
	second, ok := obj.Child("Rows")
	require.True(t, ok)
	assert.Same(t, first, second)

	_, ok = obj.Child("Missing")
	assert.False(t, ok)
}

func TestObject_HasIgnoresNull(t *testing.T) {
	obj := ParseObject(`{"Present": 1, "Null": null}`)

	assert.True(t, obj.Has("Present"))
	assert.False(t, obj.Has("Null"))
	assert.False(t, obj.Has("Missing"))
}

func TestObject_Decode(t *testing.T) {
	obj := ParseObject(`{
		"ItemToCreate_4_842F5059497E898D938220BCCC148B08": {"DataTable": {"ObjectName": "ItemTable_Global", "ObjectPath": "/Game/Blueprints/Items/ItemTable_Global.0"}, "RowName": "glue"},
		"CountToCreate_17_9ACBB85C48DCB6769A2331AB7B56E2C8": 2,
		"Name_1_0123456789ABCDEF0123456789ABCDEF": {"CultureInvariantString": "Glue"}
	}`)

	var row struct {
		ItemToCreate  DataTableRowHandle `json:"ItemToCreate"`
		CountToCreate int                `json:"CountToCreate"`
		Name          StringHandle       `json:"Name"`
	}
	require.NoError(t, obj.Decode(&row))

	assert.Equal(t, "glue", row.ItemToCreate.RowName)
	assert.Equal(t, "ItemTable_Global", row.ItemToCreate.DataTable.ObjectName)
	assert.Equal(t, 2, row.CountToCreate)
	assert.Equal(t, []StringSourceKind{SourceInvariant}, row.Name.Kinds())
}
