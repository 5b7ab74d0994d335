package unreal

import (
	"fmt"
	"strings"
)

// NoneRowName is the row name engine data uses for "no row".
const NoneRowName = "None"

// EnumObjectDirectory is where enum definitions live in the extracted content.
const EnumObjectDirectory = "/Game/Blueprints/Data/"

// ObjectIdentifier addresses an entry inside an extracted file.
type ObjectIdentifier struct {
	// ObjectName is the logical name of the object (e.g., "ItemTable_Global").
	ObjectName string `json:"ObjectName"`
	// ObjectPath is the engine path of the object (e.g., "/Game/Blueprints/Items/ItemTable_Global.0").
	ObjectPath string `json:"ObjectPath"`
}

// String returns the object path, falling back to the object name.
func (id ObjectIdentifier) String() string {
	if id.ObjectPath != "" {
		return id.ObjectPath
	}
	return id.ObjectName
}

// DataTableRowHandle points at a single row of a data table.
type DataTableRowHandle struct {
	DataTable ObjectIdentifier `json:"DataTable"`
	RowName   string           `json:"RowName"`
}

// IsNone reports whether the handle explicitly points at no row.
func (h DataTableRowHandle) IsNone() bool {
	return h.RowName == NoneRowName || h.RowName == ""
}

// String formats the handle as "<table>[<row>]" for logs and errors.
func (h DataTableRowHandle) String() string {
	return fmt.Sprintf("%s[%s]", h.DataTable.ObjectName, h.RowName)
}

// AssetHandle references a binary asset such as a texture.
type AssetHandle struct {
	AssetPathName string `json:"AssetPathName"`
	SubPathString string `json:"SubPathString"`
}

// IsEmpty reports whether the handle references nothing.
func (h AssetHandle) IsEmpty() bool {
	return h.AssetPathName == "" || h.AssetPathName == NoneRowName
}

// EnumReference is a parsed "EnumName::Member" value.
type EnumReference struct {
	Name   string
	Member string
}

// ParseEnumReference splits an enum value into its type name and member.
func ParseEnumReference(value string) (EnumReference, error) {
	parts := strings.Split(value, "::")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return EnumReference{}, fmt.Errorf("%w: %q", ErrMalformedEnumReference, value)
	}
	return EnumReference{Name: parts[0], Member: parts[1]}, nil
}

// Identifier returns the identifier of the enum definition object.
func (r EnumReference) Identifier() ObjectIdentifier {
	return ObjectIdentifier{
		ObjectName: r.Name,
		ObjectPath: EnumObjectDirectory + r.Name + ".0",
	}
}

// String returns the reference in its "EnumName::Member" form.
func (r EnumReference) String() string {
	return r.Name + "::" + r.Member
}
