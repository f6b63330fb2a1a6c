package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
	"github.com/storemate/storemate-cli/pkg/pagination"
)

func TestParseItemFlag(t *testing.T) {
	cases := []struct {
		input   string
		want    cartLine
		wantErr bool
	}{
		{input: "i1", want: cartLine{ItemID: "i1", Quantity: 1}},
		{input: "i1:3", want: cartLine{ItemID: "i1", Quantity: 3}},
		{input: " i1 : 2 ", want: cartLine{ItemID: "i1", Quantity: 2}},
		{input: "i1:0", want: cartLine{ItemID: "i1", Quantity: 0}},
		{input: "", wantErr: true},
		{input: ":3", wantErr: true},
		{input: "i1:abc", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseItemFlag(tc.input)
		if tc.wantErr {
			if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
				t.Fatalf("%q: expected validation error, got %v", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestItemIndexSnapshot(t *testing.T) {
	idx := newItemIndex([]api.Item{
		{ID: "i1", Name: "Rice", Price: 60, Quantity: 12},
	})

	snap, ok := idx.Snapshot("i1")
	if !ok || snap.Name != "Rice" || snap.Price != 60 {
		t.Fatalf("unexpected snapshot %+v ok=%v", snap, ok)
	}
	if _, ok := idx.Snapshot("i2"); ok {
		t.Fatal("resolved an unknown item")
	}
}

func TestPrintTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"ID", "NAME"}, [][]string{
		{"i1", "Rice"},
		{"i2", "Sugar"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "NAME") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "i2") {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestPrintPageFooter(t *testing.T) {
	var buf bytes.Buffer
	printPageFooter(&buf, pagination.Info{Page: 2, PerPage: 10, TotalItems: 25, TotalPages: 3})
	if got := buf.String(); got != "page 2 of 3 (25 total)\n" {
		t.Fatalf("unexpected footer %q", got)
	}
}

func TestMoneyDisplay(t *testing.T) {
	if got := money(45.5); got != "45.50" {
		t.Fatalf("money(45.5) = %q", got)
	}
	if got := money(0); got != "0.00" {
		t.Fatalf("money(0) = %q", got)
	}
}
