package req

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode читает JSON тело запроса в значение типа T
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if body == nil {
		return payload, errors.New("empty request body")
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
