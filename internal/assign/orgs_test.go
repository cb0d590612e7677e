package assign

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeOrgLister serves a fixed OU tree from memory.
type fakeOrgLister struct {
	children map[string][]string
	accounts map[string][]string
	failOn   string
}

func (f *fakeOrgLister) ListChildOUs(ctx context.Context, ouID string) ([]string, error) {
	if f.failOn == ouID {
		return nil, errors.New("access denied")
	}
	return f.children[ouID], nil
}

func (f *fakeOrgLister) ListAccounts(ctx context.Context, ouID string) ([]string, error) {
	if f.failOn == ouID {
		return nil, errors.New("access denied")
	}
	return f.accounts[ouID], nil
}

func TestExpandOU(t *testing.T) {
	tests := []struct {
		name   string
		lister *fakeOrgLister
		ou     string
		want   []Value
	}{
		{
			name: "Flat OU",
			lister: &fakeOrgLister{
				accounts: map[string][]string{"ou-root": {"111111111111", "222222222222"}},
			},
			ou:   "ou-root",
			want: []Value{Literal("111111111111"), Literal("222222222222")},
		},
		{
			name: "Nested OUs Breadth First",
			lister: &fakeOrgLister{
				children: map[string][]string{
					"ou-root": {"ou-a", "ou-b"},
					"ou-a":    {"ou-a1"},
				},
				accounts: map[string][]string{
					"ou-root": {"111111111111"},
					"ou-a":    {"222222222222"},
					"ou-b":    {"333333333333"},
					"ou-a1":   {"444444444444"},
				},
			},
			ou: "ou-root",
			want: []Value{
				Literal("111111111111"),
				Literal("222222222222"),
				Literal("333333333333"),
				Literal("444444444444"),
			},
		},
		{
			name: "Duplicate Accounts Collapsed",
			lister: &fakeOrgLister{
				children: map[string][]string{"ou-root": {"ou-a"}},
				accounts: map[string][]string{
					"ou-root": {"111111111111"},
					"ou-a":    {"111111111111", "222222222222"},
				},
			},
			ou:   "ou-root",
			want: []Value{Literal("111111111111"), Literal("222222222222")},
		},
		{
			name:   "Empty OU",
			lister: &fakeOrgLister{},
			ou:     "ou-empty",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandOU(context.Background(), tt.lister, Literal(tt.ou))
			if err != nil {
				t.Fatalf("ExpandOU(%q) returned error: %v", tt.ou, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExpandOU(%q) mismatch (-want +got):\n%s", tt.ou, diff)
			}
		})
	}
}

func TestExpandOUFailureAborts(t *testing.T) {
	lister := &fakeOrgLister{
		children: map[string][]string{"ou-root": {"ou-a"}},
		accounts: map[string][]string{"ou-root": {"111111111111"}},
		failOn:   "ou-a",
	}

	accounts, err := ExpandOU(context.Background(), lister, Literal("ou-root"))
	if err == nil {
		t.Fatal("ExpandOU succeeded, want error when a child unit lookup fails")
	}
	if accounts != nil {
		t.Errorf("ExpandOU returned partial accounts %v on failure", accounts)
	}
}

func TestExpandOURejectsReference(t *testing.T) {
	_, err := ExpandOU(context.Background(), &fakeOrgLister{}, NewRef("OUParam"))
	if err == nil {
		t.Fatal("ExpandOU accepted a reference OU id")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error is %T, want *ConfigError", err)
	}
}
