//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "pos-api"
	ConsumerName = "till-frontend"

	StateOrdersBaseline = "orders baseline"
	StateOrderExists    = "order with id 1 exists"
	StateOrderMissing   = "no order with id 404"
)

const (
	ExistingOrderID int64 = 1
	MissingOrderID  int64 = 404

	ExampleOrderNumber = "ORD-1"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the till consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCheckoutPayload provides stable cart data for pact interactions.
func ExampleCheckoutPayload() map[string]any {
	return map[string]any{
		"orderType":   "dine",
		"tableNumber": "T4",
		"items": []map[string]any{
			{"menuItemId": int64(11), "name": "Masala Dosa", "quantity": 2, "unitPrice": 120.0},
			{"menuItemId": int64(12), "name": "Filter Coffee", "quantity": 1, "unitPrice": 40.0},
		},
		"discountPercentage": 10.0,
		"paymentMethod":      "cash",
		"customerName":       "Ravi",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
