package finance

import (
	"errors"
	"testing"

	"github.com/etnz/finance/date"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"valid", RegisterRequest{Email: " Ada@Example.com ", Name: "Ada", Password: "secret"}, false},
		{"missing email", RegisterRequest{Name: "Ada", Password: "secret"}, true},
		{"not an address", RegisterRequest{Email: "ada", Name: "Ada", Password: "secret"}, true},
		{"missing name", RegisterRequest{Email: "ada@example.com", Password: "secret"}, true},
		{"short password", RegisterRequest{Email: "ada@example.com", Name: "Ada", Password: "abc"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Validate() error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestRegisterRequest_ValidateNormalizesEmail(t *testing.T) {
	req := RegisterRequest{Email: " Ada@Example.COM", Name: " Ada ", Password: "secret"}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Email != "ada@example.com" || req.Name != "Ada" {
		t.Errorf("Validate() left %q %q, want normalized email and name", req.Email, req.Name)
	}
}

func TestCreateTransactionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTransactionRequest
		wantErr bool
	}{
		{"expense", CreateTransactionRequest{Amount: D("12.5"), Kind: Expense, Category: "Food"}, false},
		{"income any label", CreateTransactionRequest{Amount: D("1000"), Kind: Income, Category: "Salary"}, false},
		{"unknown expense category", CreateTransactionRequest{Amount: D("1"), Kind: Expense, Category: "Travel"}, true},
		{"zero amount", CreateTransactionRequest{Amount: D("0"), Kind: Expense, Category: "Food"}, false},
		{"negative amount", CreateTransactionRequest{Amount: D("-3"), Kind: Income, Category: "Gift"}, true},
		{"unknown kind", CreateTransactionRequest{Amount: D("3"), Kind: "refund", Category: "Food"}, true},
		{"missing category", CreateTransactionRequest{Amount: D("3"), Kind: Income}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(DefaultCategories)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateTransactionRequest_ValidateDefaultsDate(t *testing.T) {
	req := CreateTransactionRequest{Amount: D("1"), Kind: Expense, Category: "Other"}
	if err := req.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if req.Date != date.Today() {
		t.Errorf("Validate() date = %s, want today", req.Date)
	}
}

func TestCreateHoldingRequest_Validate(t *testing.T) {
	req := CreateHoldingRequest{Symbol: " aapl ", Quantity: D("3"), PurchasePrice: D("150"), Kind: Stock}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Symbol != "AAPL" || req.Name != "AAPL" || req.PurchaseDate.IsZero() {
		t.Errorf("Validate() = %+v, want normalized symbol, default name and date", req)
	}

	bad := CreateHoldingRequest{Kind: "bond", Quantity: D("0"), PurchasePrice: D("-1")}
	err := bad.Validate()
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Validate() error = %v, want ErrInvalidRequest", err)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		kind   AssetKind
		want   string
	}{
		{" aapl ", Stock, "AAPL"},
		{"brk.b", Stock, "BRK.B"},
		{" bitcoin", Crypto, "bitcoin"},
		{"BTC", Crypto, "BTC"},
	}
	for _, tt := range tests {
		if got := NormalizeSymbol(tt.symbol, tt.kind); got != tt.want {
			t.Errorf("NormalizeSymbol(%q, %s) = %q, want %q", tt.symbol, tt.kind, got, tt.want)
		}
	}
}
