package resp

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorBody struct {
	Error string `json:"error"`
}

// WriteJSONResponse пишет статус и JSON тело ответа
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError пишет ошибку в виде {"error": "..."}
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, errorBody{Error: msg})
}

// Marshal кодирует значение тем же кодеком, что и ответы
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
