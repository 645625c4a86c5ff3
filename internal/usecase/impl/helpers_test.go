package impl

import (
	"context"
	"io"
	"log/slog"

	"sweetshop/internal/domain/entity"
	"sweetshop/internal/domain/repository"
	mockRepo "sweetshop/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes the transaction manager run the callback against the
// given factory and return whatever the callback returns.
func expectTransaction(txManager *mockRepo.MockTransactionManager, repoFactory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})
}

func testAdmin() *entity.User {
	return &entity.User{ID: 1, Username: "Admin", Email: "admin@sweetshop.com", Role: entity.RoleAdmin}
}

func testCustomer() *entity.User {
	return &entity.User{ID: 2, Username: "alice", Email: "alice@example.com", Role: entity.RoleUser}
}

func testProduct() *entity.Product {
	return &entity.Product{ID: 1, Name: "Kaju Katli", Category: "Barfi", Price: 50, Quantity: 10, Img: "kaju.png"}
}
