package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
)

func TestConsoleView(t *testing.T) {
	v := NewConsoleView()
	assert.Equal(t, usecase.ModalNone, v.Modal())
	assert.False(t, v.Loading())

	v.ShowModal(usecase.ModalDetail)
	v.ShowModal(usecase.ModalEdit)
	assert.Equal(t, usecase.ModalEdit, v.Modal())
	v.HideModal()
	assert.Equal(t, usecase.ModalNone, v.Modal())

	v.SetLoading(true)
	assert.True(t, v.Loading())

	v.Notify(usecase.Notification{Level: usecase.LevelSuccess, Message: "saved"})
	v.Notify(usecase.Notification{Level: usecase.LevelError, Message: "failed"})
	taken := v.TakeNotifications()
	assert.Len(t, taken, 2)
	assert.Equal(t, "saved", taken[0].Message)
	assert.Empty(t, v.TakeNotifications())
}
