package feed

type pageResponse[T any] struct {
	Data []T         `json:"data"`
	Meta metaSection `json:"meta"`
}

type metaSection struct {
	TotalPages int `json:"total_pages"`
}
