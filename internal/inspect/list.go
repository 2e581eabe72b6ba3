package inspect

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/omgnotthatguy/errtree/pkg/errtree"
)

type Format int

const (
	Unknown Format = iota
	Pretty
	Plain
)

var (
	ErrInvalidFormat = fmt.Errorf("unknown format")
)

func FormatFromString(in string) (Format, error) {
	switch strings.ToLower(in) {
	case "pretty":
		return Pretty, nil
	case "plain", "text":
		return Plain, nil
	}
	return Unknown, ErrInvalidFormat
}

type ListOptions struct {
	Output  Format
	Inspect []InspectOption
}

type ListOption func(o *ListOptions)

func OutputFormat(v Format) ListOption {
	return func(o *ListOptions) {
		o.Output = v
	}
}

// WithInspectOptions forwards options to the underlying Collect
func WithInspectOptions(opts ...InspectOption) ListOption {
	return func(o *ListOptions) {
		o.Inspect = append(o.Inspect, opts...)
	}
}

func NewListOptions(opts ...ListOption) *ListOptions {
	l := &ListOptions{}
	for _, v := range opts {
		v(l)
	}
	return l
}

// List prints a flat inventory of the error types reachable from the
// pattern: the type, its qualifying direct parents and whether it has more
// than one of them
func List(ctx context.Context, pattern string, opts ...ListOption) error {
	o := NewListOptions(opts...)

	registry, err := Collect(ctx, pattern, o.Inspect...)
	if err != nil {
		return fmt.Errorf("failed to collect error types: %w", err)
	}

	records := make([]*errtree.TypeRecord, registry.Len())
	copy(records, registry.Records())
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	switch o.Output {
	case Plain:
		for _, v := range records {
			fmt.Println(TabString(v.Name, parentNames(v), strconv.FormatBool(v.Multiparented())))
		}
	case Pretty:
		fallthrough
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"type", "parents", "multiple"})
		for _, v := range records {
			table.Append([]string{v.Name, parentNames(v), strconv.FormatBool(v.Multiparented())})
		}
		table.Render()
	}

	return nil
}

func parentNames(rec *errtree.TypeRecord) string {
	names := make([]string, 0, len(rec.Parents))
	for _, p := range rec.Parents {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func TabString(fields ...string) string {
	return strings.Join(fields, "\t")
}
