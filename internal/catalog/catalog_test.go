package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storebill/storebill/internal/errs"
	"github.com/storebill/storebill/internal/models"
)

func newTestStore(opts ...Option) *Store {
	return New(DefaultSections(), nil, opts...)
}

func TestAddProductValidation(t *testing.T) {
	tests := []struct {
		name      string
		prodName  string
		price     decimal.Decimal
		sectionID string
		wantField string
	}{
		{name: "empty name", prodName: "", price: decimal.NewFromInt(10), sectionID: "biscuits", wantField: "name"},
		{name: "whitespace name", prodName: "   ", price: decimal.NewFromInt(10), sectionID: "biscuits", wantField: "name"},
		{name: "zero price", prodName: "Rusk", price: decimal.Zero, sectionID: "biscuits", wantField: "price"},
		{name: "negative price", prodName: "Rusk", price: decimal.NewFromInt(-5), sectionID: "biscuits", wantField: "price"},
		{name: "missing section", prodName: "Rusk", price: decimal.NewFromInt(10), sectionID: "", wantField: "sectionId"},
		{name: "unknown section", prodName: "Rusk", price: decimal.NewFromInt(10), sectionID: "frozen-foods", wantField: "sectionId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()

			_, err := s.AddProduct(tt.prodName, tt.price, "", tt.sectionID)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, 0, s.Len(), "failed add must not change the catalog")
		})
	}
}

func TestAddProductAppendsInInsertionOrder(t *testing.T) {
	s := newTestStore()

	first, err := s.AddProduct("Rusk", decimal.NewFromInt(25), "https://example.test/rusk.jpg", "biscuits")
	require.NoError(t, err)
	second, err := s.AddProduct("  Marie Gold  ", decimal.NewFromInt(15), "", "biscuits")
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Marie Gold", second.Name, "name must be trimmed")

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)
}

func TestAddProductRedrawsCollidingIDs(t *testing.T) {
	ids := []string{"taken", "taken", "fresh"}
	s := New(DefaultSections(), []models.Product{
		{ID: "taken", Name: "Existing", Price: decimal.NewFromInt(10), SectionID: "biscuits"},
	}, WithIDSource(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	p, err := s.AddProduct("Rusk", decimal.NewFromInt(25), "", "biscuits")
	require.NoError(t, err)
	assert.Equal(t, "fresh", p.ID)
}

func TestUpdateProduct(t *testing.T) {
	s := newTestStore()
	p, err := s.AddProduct("Rusk", decimal.NewFromInt(25), "old.jpg", "biscuits")
	require.NoError(t, err)

	p.Name = "Premium Rusk"
	p.Price = decimal.NewFromInt(40)
	p.ImageURL = "new.jpg"
	p.SectionID = SectionUserDefined
	require.NoError(t, s.UpdateProduct(p))

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got, "update must replace all fields")
}

func TestUpdateProductNotFound(t *testing.T) {
	s := newTestStore()

	err := s.UpdateProduct(models.Product{ID: "ghost", Name: "Ghost", Price: decimal.NewFromInt(1)})

	var nferr *errs.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "ghost", nferr.ID)
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	s := newTestStore()
	p, err := s.AddProduct("Rusk", decimal.NewFromInt(25), "", "biscuits")
	require.NoError(t, err)

	s.DeleteProduct(p.ID)
	assert.Equal(t, 0, s.Len())

	s.DeleteProduct(p.ID) // second delete is a no-op
	s.DeleteProduct("never-existed")
	assert.Equal(t, 0, s.Len())
}

func TestListBySection(t *testing.T) {
	s := New(DefaultSections(), DefaultProducts())

	biscuits := s.ListBySection("biscuits")
	require.Len(t, biscuits, 5)
	assert.Equal(t, "oreo-cream", biscuits[0].ID, "section listing keeps catalog insertion order")
	assert.Equal(t, "jim-jam", biscuits[4].ID)

	assert.Empty(t, s.ListBySection("frozen-foods"))
	assert.Empty(t, s.ListBySection(SectionUserDefined), "seed catalog has no user-defined items")
}

func TestDefaultCatalog(t *testing.T) {
	sections := DefaultSections()
	products := DefaultProducts()

	require.Len(t, sections, 7)
	require.Len(t, products, 34)

	known := make(map[string]bool, len(sections))
	for _, sec := range sections {
		known[sec.ID] = true
	}
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate seed product ID %s", p.ID)
		seen[p.ID] = true
		assert.True(t, known[p.SectionID], "product %s references unknown section %s", p.ID, p.SectionID)
		assert.True(t, p.Price.IsPositive(), "product %s has non-positive price", p.ID)
	}
}
