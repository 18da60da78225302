package cli

import (
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/viant/toconv"
)

const nullableSuffix = "?"

type namedType struct {
	name  string
	rType reflect.Type
}

var namedTypes = []namedType{
	{"bool", reflect.TypeOf(false)},
	{"int", reflect.TypeOf(0)},
	{"int8", reflect.TypeOf(int8(0))},
	{"int16", reflect.TypeOf(int16(0))},
	{"int32", reflect.TypeOf(int32(0))},
	{"int64", reflect.TypeOf(int64(0))},
	{"uint", reflect.TypeOf(uint(0))},
	{"uint8", reflect.TypeOf(uint8(0))},
	{"uint16", reflect.TypeOf(uint16(0))},
	{"uint32", reflect.TypeOf(uint32(0))},
	{"uint64", reflect.TypeOf(uint64(0))},
	{"float32", reflect.TypeOf(float32(0))},
	{"float64", reflect.TypeOf(float64(0))},
	{"decimal", reflect.TypeOf(apd.Decimal{})},
	{"time", reflect.TypeOf(time.Time{})},
	{"uuid", reflect.TypeOf(uuid.UUID{})},
	{"string", reflect.TypeOf("")},
}

// LookupType returns type for name, a trailing ? selects the nullable form
func LookupType(name string) (reflect.Type, error) {
	base := strings.TrimSuffix(name, nullableSuffix)
	found, ok := lo.Find(namedTypes, func(item namedType) bool { return item.name == base })
	if !ok {
		return nil, fmt.Errorf("unsupported type %q, supported: %v", name, strings.Join(lo.Map(namedTypes, func(item namedType, _ int) string { return item.name }), ", "))
	}
	if base != name {
		if found.rType.Kind() == reflect.String {
			return nil, fmt.Errorf("unsupported nullable type %q", name)
		}
		return reflect.PointerTo(found.rType), nil
	}
	return found.rType, nil
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported target types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tTYPE")
			for _, item := range namedTypes {
				desc := toconv.Describe(item.rType)
				fmt.Fprintf(w, "%s\t%s\t%s\n", item.name, desc.Category, toconv.FriendlyName(item.rType))
			}
			rootOpts.Logger().WithField("count", len(namedTypes)).Debug("listed types")
			return w.Flush()
		},
	}
}
