package domain

import "encoding/json"

// DatasetRecord 是 Hugging Face 数据集列表接口返回的单条记录
// 只在分类阶段使用，不落盘
// 解码是宽容的：id 不是字符串就退化为原始 JSON 文本，
// tags 不是数组就当作没有标签，author 不是字符串就当作缺失
type DatasetRecord struct {
	ID     string
	Author string
	Tags   []string
}

func (d *DatasetRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     json.RawMessage `json:"id"`
		Author json.RawMessage `json:"author"`
		Tags   json.RawMessage `json:"tags"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.ID = looseString(raw.ID)
	d.Author = strictString(raw.Author)
	d.Tags = looseStringList(raw.Tags)
	return nil
}

// looseString 字符串原样返回；null/缺失返回空串；其他类型退化为原始 JSON 文本
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// strictString 只接受 JSON 字符串，其他一律当作缺失
func strictString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// looseStringList 只接受数组，且只保留其中的字符串元素
func looseStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
