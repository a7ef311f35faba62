package domain

import "strings"

// Bundle field names understood by `cl info -f`.
// These mirror the column names of the CodaLab bundle table.
const (
	FieldUUID    = "uuid"
	FieldName    = "name"
	FieldArgs    = "args"
	FieldState   = "state"
	FieldOwner   = "owner"
	FieldCreated = "created"
)

// ShowFields is the field set fetched by the show command, in display order.
var ShowFields = []string{
	FieldUUID,
	FieldName,
	FieldArgs,
	FieldState,
	FieldOwner,
	FieldCreated,
}

// BundleInfo holds the field values fetched for a single bundle.
type BundleInfo struct {
	UUID    string `json:"uuid" yaml:"uuid"`
	Name    string `json:"name" yaml:"name"`
	Args    string `json:"args" yaml:"args"`
	State   string `json:"state" yaml:"state"`
	Owner   string `json:"owner" yaml:"owner"`
	Created string `json:"created" yaml:"created"`
}

// Field returns the value for a field name, empty if unknown.
func (b *BundleInfo) Field(name string) string {
	switch name {
	case FieldUUID:
		return b.UUID
	case FieldName:
		return b.Name
	case FieldArgs:
		return b.Args
	case FieldState:
		return b.State
	case FieldOwner:
		return b.Owner
	case FieldCreated:
		return b.Created
	}
	return ""
}

// SetField stores a value under a field name. Unknown names are ignored.
func (b *BundleInfo) SetField(name, value string) {
	switch name {
	case FieldUUID:
		b.UUID = value
	case FieldName:
		b.Name = value
	case FieldArgs:
		b.Args = value
	case FieldState:
		b.State = value
	case FieldOwner:
		b.Owner = value
	case FieldCreated:
		b.Created = value
	}
}

// DefaultChainTarget is the cl invocation chained input is appended to
// when no explicit subcommand is given. It matches the fixed flag of the
// original xcl alias.
func DefaultChainTarget() []string {
	return []string{"info", "-f", FieldArgs}
}

// RecreateLine builds the command line that would recreate a bundle,
// given the argument string reported by `cl info -f args`.
func RecreateLine(clBin, args string) string {
	args = strings.TrimSpace(args)
	if args == "" {
		return clBin
	}
	return clBin + " " + args
}
