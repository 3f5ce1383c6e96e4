package mock

import (
	"testing"

	"github.com/golang/mock/gomock"
)

func NewStorage(t *testing.T) *MockStorage {
	return NewMockStorage(gomock.NewController(t))
}
