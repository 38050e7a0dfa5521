package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		verify func(*testing.T, DatasetRecord)
	}{
		{
			name: "正常记录",
			body: `{"id":"alice/lerobot-x","author":"Alice","tags":["robotics","lerobot"]}`,
			verify: func(t *testing.T, rec DatasetRecord) {
				assert.Equal(t, "alice/lerobot-x", rec.ID)
				assert.Equal(t, "Alice", rec.Author)
				assert.Equal(t, []string{"robotics", "lerobot"}, rec.Tags)
			},
		},
		{
			name: "缺少所有可选字段",
			body: `{"id":"bob/other"}`,
			verify: func(t *testing.T, rec DatasetRecord) {
				assert.Equal(t, "bob/other", rec.ID)
				assert.Empty(t, rec.Author)
				assert.Nil(t, rec.Tags)
			},
		},
		{
			name: "tags不是数组时当作没有标签",
			body: `{"id":"carol/x","tags":"lerobot"}`,
			verify: func(t *testing.T, rec DatasetRecord) {
				assert.Nil(t, rec.Tags)
			},
		},
		{
			name: "tags数组里的非字符串元素被跳过",
			body: `{"id":"carol/x","tags":["lerobot",42,null,{"k":"v"}]}`,
			verify: func(t *testing.T, rec DatasetRecord) {
				assert.Equal(t, []string{"lerobot"}, rec.Tags)
			},
		},
		{
			name: "author不是字符串时当作缺失",
			body: `{"id":"dave/x","author":123}`,
			verify: func(t *testing.T, rec DatasetRecord) {
				assert.Empty(t, rec.Author)
			},
		},
		{
			name: "id缺失或为null时为空串",
			body: `{"author":"eve","id":null}`,
			verify: func(t *testing.T, rec DatasetRecord) {
				assert.Equal(t, "", rec.ID)
			},
		},
		{
			name: "id不是字符串时退化为原始JSON文本",
			body: `{"id":42}`,
			verify: func(t *testing.T, rec DatasetRecord) {
				assert.Equal(t, "42", rec.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec DatasetRecord
			err := json.Unmarshal([]byte(tt.body), &rec)
			assert.NoError(t, err)
			tt.verify(t, rec)
		})
	}
}
