package orchestration

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
)

// TestProcess_EachSourceCalledOnce verifies that every configured source is
// queried exactly once per request, with the request input as the key.
func TestProcess_EachSourceCalledOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := NewMockGenSource(ctrl)
	first.EXPECT().Name().Return("first").AnyTimes()
	first.EXPECT().Fetch(gomock.Any(), "order-42").
		Return(map[string]any{"hit": true}, nil).
		Times(1)

	second := NewMockGenSource(ctrl)
	second.EXPECT().Name().Return("second").AnyTimes()
	second.EXPECT().Fetch(gomock.Any(), "order-42").
		Return(nil, errors.New("backend down")).
		Times(1)

	orch := New([]Source{first, second}, WithLogger(discardLogger()))

	result, err := orch.Process(context.Background(), "order-42", nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(result.Sources) != 2 {
		t.Fatalf("expected 2 source results, got %d", len(result.Sources))
	}
	if result.Sources[0].Err != nil {
		t.Errorf("first source should have succeeded: %v", result.Sources[0].Err)
	}
	if result.Sources[1].Err == nil {
		t.Error("second source should have failed")
	}
}
