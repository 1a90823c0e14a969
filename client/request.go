package client

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// Request is a small HTTP helper used to download user-uploaded files
// (the /restore blacklist upload) from the Bot API file endpoint.
type Request struct {
	Url     string
	Method  string
	Body    string
	Heads   map[string]string
	TimeOut time.Duration
}

func NewRequest(url string, method string) *Request {
	return &Request{Url: url, Method: method, TimeOut: time.Second * 3}
}

func (h Request) Do() ([]byte, error) {
	var res []byte
	req, err := http.NewRequest(h.Method, h.Url, strings.NewReader(h.Body))
	if err != nil {
		return res, err
	}
	for k, v := range h.Heads {
		req.Header.Set(k, v)
	}
	client := http.Client{Timeout: h.TimeOut}
	resp, err := client.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()
	res, _ = io.ReadAll(resp.Body)
	return res, nil
}
