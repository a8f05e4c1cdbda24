package loader_test

import (
	"errors"
	"testing"

	"unbound-webhook/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := new(mockFeature)
	enabled.On("IsEnabled").Return(true)
	enabled.On("Load", app).Return(nil).Once()

	disabled := new(mockFeature)
	disabled.On("IsEnabled").Return(false)

	mgr := loader.NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	assert.NoError(t, mgr.LoadAll(app))
	assert.Len(t, mgr.Features(), 2)
	enabled.AssertExpectations(t)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAllError(t *testing.T) {
	app := fiber.New()
	boom := errors.New("boom")

	failing := new(mockFeature)
	failing.On("IsEnabled").Return(true)
	failing.On("Name").Return("failing")
	failing.On("Load", app).Return(boom)

	next := new(mockFeature)

	mgr := loader.NewManager()
	mgr.Register(failing)
	mgr.Register(next)

	err := mgr.LoadAll(app)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	next.AssertNotCalled(t, "IsEnabled")
}
