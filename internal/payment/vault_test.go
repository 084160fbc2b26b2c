package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery-api/internal/domain"
)

func card(holder string) domain.PaymentMethod {
	return domain.PaymentMethod{
		Type:        domain.CardTypeCredit,
		Name:        "Cartão de Crédito",
		Brand:       BrandVisa,
		LastDigits:  "1111",
		HolderName:  holder,
		ExpiryMonth: "12",
		ExpiryYear:  "28",
	}
}

func requireSingleDefault(t *testing.T, v *Vault) {
	t.Helper()
	defaults := 0
	for _, m := range v.Saved() {
		if m.IsDefault {
			defaults++
		}
	}
	require.Equal(t, 1, defaults, "non-empty vault must have exactly one default")
}

func TestFirstCardBecomesDefault(t *testing.T) {
	v := New()
	first := v.Add(card("A"))
	assert.True(t, first.IsDefault)
	assert.NotEmpty(t, first.ID)

	second := v.Add(card("B"))
	assert.False(t, second.IsDefault)
	requireSingleDefault(t, v)
}

func TestRemoveDefaultPromotesFirstRemaining(t *testing.T) {
	v := New()
	first := v.Add(card("A"))
	second := v.Add(card("B"))
	v.Add(card("C"))

	require.NoError(t, v.Remove(first.ID))

	requireSingleDefault(t, v)
	saved := v.Saved()
	require.Len(t, saved, 2)
	assert.Equal(t, second.ID, saved[0].ID)
	assert.True(t, saved[0].IsDefault)
}

func TestRemoveUnknownCard(t *testing.T) {
	v := New()
	v.Add(card("A"))
	assert.ErrorIs(t, v.Remove("nope"), domain.ErrNotFound)
	assert.Len(t, v.Saved(), 1)
}

func TestFixedMethodsCannotBeRemoved(t *testing.T) {
	v := New()
	assert.ErrorIs(t, v.Remove("pix"), domain.ErrNotFound)
	assert.ErrorIs(t, v.Remove("money"), domain.ErrNotFound)
	assert.Len(t, FixedMethods(), 2, "fixed methods are constant")
}

func TestSetDefaultIsExclusiveAndSilentOnUnknown(t *testing.T) {
	v := New()
	v.Add(card("A"))
	second := v.Add(card("B"))

	v.SetDefault(second.ID)
	requireSingleDefault(t, v)
	def := v.DefaultMethod()
	require.NotNil(t, def)
	assert.Equal(t, second.ID, def.ID)

	v.SetDefault("nope")
	def = v.DefaultMethod()
	require.NotNil(t, def)
	assert.Equal(t, second.ID, def.ID, "unknown id leaves the default unchanged")
}

func TestUpdateNeverTouchesDefaultFlag(t *testing.T) {
	v := New()
	first := v.Add(card("A"))
	holder := "novo titular"
	updated, err := v.Update(first.ID, Patch{HolderName: &holder})
	require.NoError(t, err)
	assert.Equal(t, "NOVO TITULAR", updated.HolderName)
	assert.True(t, updated.IsDefault)

	_, err = v.Update("nope", Patch{HolderName: &holder})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFixedMethodLookupAndOrder(t *testing.T) {
	fixed := FixedMethods()
	require.Len(t, fixed, 2)
	assert.Equal(t, "pix", fixed[0].ID)
	assert.Equal(t, "money", fixed[1].ID)
	assert.True(t, fixed[0].IsFixed)

	pix, ok := FixedMethod("pix")
	require.True(t, ok)
	assert.Equal(t, "PIX", pix.Name)

	_, ok = FixedMethod("credit")
	assert.False(t, ok)
}

func TestDefaultMethodFallbacks(t *testing.T) {
	v := New()
	assert.Nil(t, v.DefaultMethod(), "no saved cards means no default")

	v.saved = []domain.PaymentMethod{
		{ID: "m1", HolderName: "A"},
		{ID: "m2", HolderName: "B"},
	}
	def := v.DefaultMethod()
	require.NotNil(t, def)
	assert.Equal(t, "m1", def.ID)
	assert.False(t, v.Saved()[0].IsDefault, "fallback is view-only")
}

func TestSeedVault(t *testing.T) {
	v := Seed()
	saved := v.Saved()
	require.Len(t, saved, 2)
	assert.Equal(t, "Visa", saved[0].Brand)
	assert.True(t, saved[0].IsDefault)
	assert.Equal(t, "Mastercard", saved[1].Brand)
	assert.False(t, saved[1].IsDefault)
}
