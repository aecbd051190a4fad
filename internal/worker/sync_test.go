package worker_test

import (
	"context"
	"creditscore/internal/profile"
	mockprofile "creditscore/internal/profile/mock"
	"creditscore/internal/worker"
	"creditscore/pkg/serrors"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var account = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")

func makeJob(id int64, account string) *river.Job[profile.JobArgs] {
	return &river.Job[profile.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   profile.JobArgs{Account: account},
	}
}

func TestSyncWorker_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockprofile.NewMockService(ctrl)
	w := worker.NewSyncWorker(svc, time.Minute)

	svc.EXPECT().Sync(gomock.Any(), account).Return(&profile.SyncResult{Account: account, NewTransactions: 4}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "0x8ba1f109551bd432803012645ac136ddd64dba72")))
}

func TestSyncWorker_InvalidAccountCancels(t *testing.T) {
	w := worker.NewSyncWorker(mockprofile.NewMockService(gomock.NewController(t)), time.Minute)

	err := w.Work(context.Background(), makeJob(2, "nope"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestSyncWorker_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCancel bool
		wantSnooze bool
	}{
		{name: "bad request", err: serrors.With(serrors.ErrBadRequest, "Invalid address format"), wantCancel: true},
		{name: "unauthorized", err: serrors.With(serrors.ErrUnauthorized, "Invalid API Key"), wantCancel: true},
		{name: "rate limited", err: serrors.With(serrors.ErrRateLimited, "Max rate limit reached"), wantSnooze: true},
		{name: "unavailable", err: serrors.With(serrors.ErrUnavailable, "explorer down")},
		{name: "plain", err: errors.New("db down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mockprofile.NewMockService(ctrl)
			w := worker.NewSyncWorker(svc, 45*time.Second)
			svc.EXPECT().Sync(gomock.Any(), account).Return(nil, tt.err)

			err := w.Work(context.Background(), makeJob(3, account.Hex()))
			require.Error(t, err)

			var cancelErr *river.JobCancelError
			require.Equal(t, tt.wantCancel, errors.As(err, &cancelErr))

			var snoozeErr *river.JobSnoozeError
			require.Equal(t, tt.wantSnooze, errors.As(err, &snoozeErr))
			if tt.wantSnooze {
				require.Equal(t, 45*time.Second, snoozeErr.Duration)
			}
			if !tt.wantCancel && !tt.wantSnooze {
				require.ErrorIs(t, err, tt.err)
			}
		})
	}
}
