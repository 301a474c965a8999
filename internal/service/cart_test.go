package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

func TestCartAddClampsToMinimum(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "cart@example.com")
	p := createProduct(t, db, "Business Cards", 500, 100)
	cart := NewCartService(db, &fakeFiles{})

	it, err := cart.Add(u.ID, p.ID, 10, model.CartOptions{Size: "90x50mm"})
	require.NoError(t, err)
	assert.Equal(t, 100, it.Quantity)

	it, err = cart.Add(u.ID, p.ID, 250, model.CartOptions{})
	require.NoError(t, err)
	assert.Equal(t, 250, it.Quantity)
}

func TestCartUpdateQuantityClamps(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "cart@example.com")
	p := createProduct(t, db, "Flyers", 1000, 50)
	cart := NewCartService(db, &fakeFiles{})

	it, err := cart.Add(u.ID, p.ID, 50, model.CartOptions{})
	require.NoError(t, err)

	it, err = cart.UpdateQuantity(u.ID, it.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 50, it.Quantity)

	it, err = cart.UpdateQuantity(u.ID, it.ID, 75)
	require.NoError(t, err)
	assert.Equal(t, 75, it.Quantity)
}

func TestCartListInsertionOrder(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "cart@example.com")
	a := createProduct(t, db, "A", 100, 1)
	b := createProduct(t, db, "B", 200, 1)
	c := createProduct(t, db, "C", 300, 1)
	cart := NewCartService(db, &fakeFiles{})

	for _, p := range []model.Product{a, b, c} {
		_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
		require.NoError(t, err)
	}

	items, err := cart.ListFor(u.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Product.Name)
	assert.Equal(t, "B", items[1].Product.Name)
	assert.Equal(t, "C", items[2].Product.Name)
}

func TestCartRemoveReleasesDesignFile(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "cart@example.com")
	p := createProduct(t, db, "T-Shirt", 25000, 1)
	files := &fakeFiles{}
	cart := NewCartService(db, files)

	it, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{DesignFile: "logo.png"})
	require.NoError(t, err)

	require.NoError(t, cart.Remove(u.ID, it.ID))
	assert.Equal(t, []string{"logo.png"}, files.deleted)

	items, err := cart.ListFor(u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRemoveSwallowsFileDeleteFailure(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "cart@example.com")
	p := createProduct(t, db, "Banner", 250000, 1)
	cart := NewCartService(db, &fakeFiles{failAll: true})

	it, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{DesignFile: "art.pdf"})
	require.NoError(t, err)

	// The DB delete is authoritative; storage failure must not surface.
	require.NoError(t, cart.Remove(u.ID, it.ID))

	items, err := cart.ListFor(u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRemoveScopedToOwner(t *testing.T) {
	db := testDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	p := createProduct(t, db, "Stickers", 100, 1)
	cart := NewCartService(db, &fakeFiles{})

	it, err := cart.Add(owner.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)

	assert.Error(t, cart.Remove(other.ID, it.ID))

	items, err := cart.ListFor(owner.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
