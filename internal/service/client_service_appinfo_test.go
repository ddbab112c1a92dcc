package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/levelup-fitness/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestClientAppInfoService_ServerVersion_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAppInfoService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().GetVersion(ctx).Return("1.4.0", nil)

	version, err := svc.ServerVersion(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

func TestClientAppInfoService_ServerVersion_ServerUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAppInfoService(mockAdapter)
	ctx := context.Background()

	wantErr := errors.New("dial tcp: connection refused")
	mockAdapter.EXPECT().GetVersion(ctx).Return("", wantErr)

	version, err := svc.ServerVersion(ctx)
	assert.Error(t, err)
	assert.Empty(t, version)
}
