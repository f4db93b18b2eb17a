package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	panic("not used in ProductUsecase tests")
}

func (m *CatalogRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *CatalogRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductUsecase_ListProducts_Success(t *testing.T) {
	pr := new(CatalogRepoMock)
	pr.On("List", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Coffee Beans 1kg", Price: price("18.90")},
		{ID: 2, Name: "Ceramic Mug", Price: price("12.50")},
	}, nil)

	uc := usecase.NewProductUsecase(pr)

	out, err := uc.ListProducts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out))
	pr.AssertExpectations(t)
}

func TestProductUsecase_ListProducts_DBError(t *testing.T) {
	pr := new(CatalogRepoMock)
	pr.On("List", mock.Anything).Return(nil, errors.New("conn refused"))

	uc := usecase.NewProductUsecase(pr)

	_, err := uc.ListProducts(context.Background())
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestProductUsecase_AdminCreateProduct_Validation(t *testing.T) {
	pr := new(CatalogRepoMock)
	uc := usecase.NewProductUsecase(pr)

	_, err := uc.AdminCreateProduct(context.Background(), usecase.AdminCreateProductInput{Name: " ", Price: price("1.00")})
	assertErrContains(t, err, "name required")

	_, err = uc.AdminCreateProduct(context.Background(), usecase.AdminCreateProductInput{Name: "Mug", Price: price("-1.00")})
	assertErrContains(t, err, "price must be >= 0")

	_, err = uc.AdminCreateProduct(context.Background(), usecase.AdminCreateProductInput{Name: "Mug", Price: price("1.00"), Stock: -1})
	assertErrContains(t, err, "stock must be >= 0")

	pr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminCreateProduct_Success(t *testing.T) {
	pr := new(CatalogRepoMock)
	pr.On("Create", mock.Anything, mock.Anything).Return(model.Product{ID: 10, Name: "Gift Box", Price: price("29.00"), Stock: 5}, nil)

	uc := usecase.NewProductUsecase(pr)

	out, err := uc.AdminCreateProduct(context.Background(), usecase.AdminCreateProductInput{
		Name:  "Gift Box",
		Price: price("29.00"),
		Stock: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	pr.AssertExpectations(t)
}

func TestProductUsecase_AdminDeleteProduct_NotFound(t *testing.T) {
	pr := new(CatalogRepoMock)
	pr.On("Delete", mock.Anything, int64(999)).Return(repo.ErrNotFound)

	uc := usecase.NewProductUsecase(pr)

	err := uc.AdminDeleteProduct(context.Background(), 999)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestProductUsecase_AdminDeleteProduct_Success(t *testing.T) {
	pr := new(CatalogRepoMock)
	pr.On("Delete", mock.Anything, int64(1)).Return(nil)

	uc := usecase.NewProductUsecase(pr)

	assert.NoError(t, uc.AdminDeleteProduct(context.Background(), 1))
	pr.AssertExpectations(t)
}
