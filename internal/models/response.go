package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single entry in the response data field
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ListData wraps a list of entries in the response data field
type ListData struct {
	List          interface{} `json:"list"`
	LimitExceeded bool        `json:"limitExceeded"`
}

// ResponseCurrentTime returns the current time in milliseconds for response envelopes
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewEntryResponse creates a successful response carrying a single entry
func NewEntryResponse(entry interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        EntryData{Entry: entry},
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse creates a successful response carrying a list of entries
func NewListResponse(list interface{}, limitExceeded bool) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        ListData{List: list, LimitExceeded: limitExceeded},
		Text:        "OK",
		Version:     2,
	}
}
