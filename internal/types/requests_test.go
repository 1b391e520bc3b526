package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThreadRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request CreateThreadRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: CreateThreadRequest{Title: "유산균 추천 부탁드려요", Body: "장 건강에 좋은 제품 있을까요?"},
			wantErr: false,
		},
		{
			name:    "missing title",
			request: CreateThreadRequest{Body: "본문만 있는 글"},
			wantErr: true,
		},
		{
			name:    "missing body",
			request: CreateThreadRequest{Title: "제목만 있는 글"},
			wantErr: true,
		},
		{
			name:    "title too long",
			request: CreateThreadRequest{Title: strings.Repeat("가", 201), Body: "본문"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateCommentRequest_Validation(t *testing.T) {
	valid := CreateCommentRequest{Body: "저도 같은 제품 먹고 있어요"}
	require.NoError(t, valid.Validate())

	empty := CreateCommentRequest{}
	err := empty.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestCustomPillRequest_Validation(t *testing.T) {
	valid := CustomPillRequest{Name: "해외직구 오메가3", Brand: "NOW Foods"}
	require.NoError(t, valid.Validate())

	missing := CustomPillRequest{Brand: "NOW Foods"}
	require.Error(t, missing.Validate())
}

func TestChatRequest_Validation(t *testing.T) {
	valid := ChatRequest{Message: "피로회복에 좋은 영양제 추천해줘"}
	require.NoError(t, valid.Validate())

	empty := ChatRequest{}
	require.Error(t, empty.Validate())
}
