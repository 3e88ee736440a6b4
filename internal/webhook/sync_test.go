package webhook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"StorefrontPayments/internal/domain/checkout"
)

func TestSyncProcessor_ProcessNotification(t *testing.T) {
	t.Parallel()

	n := authorisation("true")

	successStatuses := func(orders *MockOrderStatusWriter) {
		orders.EXPECT().UpdateConfirmationStatus(gomock.Any(), "ORD-1", checkout.ConfirmationConfirmed).Return(nil)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), "ORD-1", checkout.PaymentStatusPaid).Return(nil)
		orders.EXPECT().UpdateExportStatus(gomock.Any(), "ORD-1", checkout.ExportStatusReady).Return(nil)
		orders.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-1", checkout.OrderStatusOpen).Return(nil)
	}

	t.Run("stores then dispatches", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := gomock.NewController(t)
		sink := NewMockNotificationSink(ctrl)
		orders := NewMockOrderStatusWriter(ctrl)
		p := NewSyncProcessor(sink, nil, NewDispatcher(orders))

		store := sink.EXPECT().Store(gomock.Any(), n).Return(nil)
		orders.EXPECT().
			UpdateConfirmationStatus(gomock.Any(), "ORD-1", checkout.ConfirmationConfirmed).
			Return(nil).
			After(store)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), "ORD-1", checkout.PaymentStatusPaid).Return(nil)
		orders.EXPECT().UpdateExportStatus(gomock.Any(), "ORD-1", checkout.ExportStatusReady).Return(nil)
		orders.EXPECT().UpdateOrderStatus(gomock.Any(), "ORD-1", checkout.OrderStatusOpen).Return(nil)

		// when
		err := p.ProcessNotification(context.Background(), n)

		// then
		assert.NoError(t, err)
	})

	t.Run("duplicate delivery is acknowledged without re-dispatch", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := gomock.NewController(t)
		sink := NewMockNotificationSink(ctrl)
		orders := NewMockOrderStatusWriter(ctrl)
		p := NewSyncProcessor(sink, nil, NewDispatcher(orders))

		sink.EXPECT().Store(gomock.Any(), n).Return(ErrNotificationAlreadyStored)

		// when: no order-status expectations, a dispatch would fail the mock
		err := p.ProcessNotification(context.Background(), n)

		// then
		assert.NoError(t, err)
	})

	t.Run("primary store failure is returned for redelivery", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := gomock.NewController(t)
		sink := NewMockNotificationSink(ctrl)
		p := NewSyncProcessor(sink, nil, NewDispatcher(NewMockOrderStatusWriter(ctrl)))

		sink.EXPECT().Store(gomock.Any(), n).Return(errors.New("db down"))

		// when
		err := p.ProcessNotification(context.Background(), n)

		// then
		assert.ErrorContains(t, err, "store notification")
	})

	t.Run("audit sink failure does not block dispatch", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := gomock.NewController(t)
		sink := NewMockNotificationSink(ctrl)
		audit := NewMockNotificationSink(ctrl)
		orders := NewMockOrderStatusWriter(ctrl)
		p := NewSyncProcessor(sink, audit, NewDispatcher(orders))

		sink.EXPECT().Store(gomock.Any(), n).Return(nil)
		audit.EXPECT().Store(gomock.Any(), n).Return(errors.New("search cluster down"))
		successStatuses(orders)

		// when
		err := p.ProcessNotification(context.Background(), n)

		// then
		assert.NoError(t, err)
	})

	t.Run("audit sink receives every stored notification", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := gomock.NewController(t)
		sink := NewMockNotificationSink(ctrl)
		audit := NewMockNotificationSink(ctrl)
		orders := NewMockOrderStatusWriter(ctrl)
		p := NewSyncProcessor(sink, audit, NewDispatcher(orders))

		sink.EXPECT().Store(gomock.Any(), n).Return(nil)
		audit.EXPECT().Store(gomock.Any(), n).Return(nil)
		successStatuses(orders)

		// when
		err := p.ProcessNotification(context.Background(), n)

		// then
		assert.NoError(t, err)
	})
}
