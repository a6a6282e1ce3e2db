package album

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/susu3304/emojialbum/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse(strings.NewReader("🐶,Pets\n🐱,Pets\n🐍,Reptiles\n"))
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return c
}

func item(t *testing.T, c *catalog.Catalog, icon string) catalog.Item {
	t.Helper()
	it, err := c.Item(icon)
	if err != nil {
		t.Fatalf("Item(%s) returned error: %v", icon, err)
	}
	return it
}

func TestCreditAndView(t *testing.T) {
	c := testCatalog(t)
	ledger := NewLedger()

	ledger.Credit("alice", item(t, c, "🐶"), item(t, c, "🐱"))

	got := ledger.View("alice")
	want := Holdings{item(t, c, "🐶"): 1, item(t, c, "🐱"): 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("View(alice) = %v, want %v", got, want)
	}

	// Crediting the same item again merges quantities
	ledger.Credit("alice", item(t, c, "🐶"))
	if got := ledger.View("alice")[item(t, c, "🐶")]; got != 2 {
		t.Errorf("🐶 quantity = %d, want 2", got)
	}
}

func TestViewUnknownUserIsEmpty(t *testing.T) {
	ledger := NewLedger()

	got := ledger.View("nobody")
	if len(got) != 0 {
		t.Errorf("View(nobody) = %v, want empty holdings", got)
	}
	if ledger.Known("nobody") {
		t.Error("View must not materialize an album record")
	}
}

func TestViewReturnsCopy(t *testing.T) {
	c := testCatalog(t)
	ledger := NewLedger()
	ledger.Credit("alice", item(t, c, "🐶"))

	snapshot := ledger.View("alice")
	snapshot[item(t, c, "🐶")] = 99

	if got := ledger.View("alice")[item(t, c, "🐶")]; got != 1 {
		t.Errorf("Mutating a snapshot changed the ledger: quantity = %d, want 1", got)
	}
}

func TestEmptyCreditMakesUserKnown(t *testing.T) {
	ledger := NewLedger()

	if ledger.Known("bob") {
		t.Fatal("bob should start unknown")
	}
	ledger.Credit("bob")
	if !ledger.Known("bob") {
		t.Error("An empty credit should still record the user")
	}
	if len(ledger.View("bob")) != 0 {
		t.Error("An empty credit should not add any emojis")
	}
}

func TestTransferToUnknownRecipient(t *testing.T) {
	c := testCatalog(t)
	ledger := NewLedger()
	ledger.Credit("alice", item(t, c, "🐶"), item(t, c, "🐱"))

	before := ledger.View("alice")
	err := ledger.Transfer("alice", "bob", item(t, c, "🐶"), 1)
	if !errors.Is(err, ErrUnknownRecipient) {
		t.Fatalf("Transfer error = %v, want ErrUnknownRecipient", err)
	}
	if !reflect.DeepEqual(ledger.View("alice"), before) {
		t.Error("Failed transfer changed the sender's holdings")
	}

	// Once bob has interacted, the same transfer succeeds
	ledger.Credit("bob")
	if err := ledger.Transfer("alice", "bob", item(t, c, "🐶"), 1); err != nil {
		t.Fatalf("Transfer after bob joined returned error: %v", err)
	}

	wantAlice := Holdings{item(t, c, "🐱"): 1}
	if got := ledger.View("alice"); !reflect.DeepEqual(got, wantAlice) {
		t.Errorf("View(alice) = %v, want %v", got, wantAlice)
	}
	wantBob := Holdings{item(t, c, "🐶"): 1}
	if got := ledger.View("bob"); !reflect.DeepEqual(got, wantBob) {
		t.Errorf("View(bob) = %v, want %v", got, wantBob)
	}
}

func TestTransferInsufficientHoldings(t *testing.T) {
	c := testCatalog(t)
	ledger := NewLedger()
	ledger.Credit("alice", item(t, c, "🐶"))
	ledger.Credit("bob")

	tests := []struct {
		name     string
		icon     string
		quantity int
	}{
		{name: "item never held", icon: "🐍", quantity: 1},
		{name: "not enough of item", icon: "🐶", quantity: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beforeAlice := ledger.View("alice")
			beforeBob := ledger.View("bob")

			err := ledger.Transfer("alice", "bob", item(t, c, tt.icon), tt.quantity)
			if !errors.Is(err, ErrInsufficientHoldings) {
				t.Fatalf("Transfer error = %v, want ErrInsufficientHoldings", err)
			}
			if !reflect.DeepEqual(ledger.View("alice"), beforeAlice) {
				t.Error("Failed transfer changed the sender's holdings")
			}
			if !reflect.DeepEqual(ledger.View("bob"), beforeBob) {
				t.Error("Failed transfer changed the recipient's holdings")
			}
		})
	}
}

func TestTransferInvalidQuantity(t *testing.T) {
	c := testCatalog(t)
	ledger := NewLedger()
	ledger.Credit("alice", item(t, c, "🐶"))
	ledger.Credit("bob")

	for _, quantity := range []int{0, -1} {
		err := ledger.Transfer("alice", "bob", item(t, c, "🐶"), quantity)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Transfer with quantity %d: error = %v, want ErrInvalidQuantity", quantity, err)
		}
	}
}

func TestTransferRemovesEmptyEntry(t *testing.T) {
	c := testCatalog(t)
	ledger := NewLedger()
	ledger.Credit("alice", item(t, c, "🐶"), item(t, c, "🐶"))
	ledger.Credit("bob", item(t, c, "🐶"))

	if err := ledger.Transfer("alice", "bob", item(t, c, "🐶"), 2); err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}

	if _, ok := ledger.View("alice")[item(t, c, "🐶")]; ok {
		t.Error("Entry debited to zero should be removed, not kept")
	}
	// Transferred quantity merges into what bob already held
	if got := ledger.View("bob")[item(t, c, "🐶")]; got != 3 {
		t.Errorf("View(bob)[🐶] = %d, want 3", got)
	}
}

// Hammer the ledger with concurrent transfers between two users and check
// nothing is lost or duplicated.
func TestTransferConservesQuantity(t *testing.T) {
	c := testCatalog(t)
	ledger := NewLedger()
	dog := item(t, c, "🐶")

	const total = 100
	for i := 0; i < total; i++ {
		ledger.Credit("alice", dog)
	}
	ledger.Credit("bob")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				ledger.Transfer("alice", "bob", dog, 1)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				ledger.Transfer("bob", "alice", dog, 1)
			}
		}()
	}
	wg.Wait()

	sum := ledger.View("alice")[dog] + ledger.View("bob")[dog]
	if sum != total {
		t.Errorf("Total 🐶 across users = %d, want %d", sum, total)
	}
	for _, user := range []string{"alice", "bob"} {
		for it, quantity := range ledger.View(user) {
			if quantity <= 0 {
				t.Errorf("View(%s)[%s] = %d, holdings must stay positive", user, it.Icon, quantity)
			}
		}
	}
}
