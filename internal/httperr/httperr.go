package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

type businessMapping struct {
	status  int
	message string
}

var businessMappings = map[string]businessMapping{
	CodeUnauthorized:         {http.StatusUnauthorized, "Sessão inválida."},
	CodeSalonNotFound:        {http.StatusNotFound, "Salão não encontrado."},
	CodeProfessionalNotFound: {http.StatusNotFound, "Profissional não encontrado."},
	CodeClientNotFound:       {http.StatusNotFound, "Cliente não encontrado."},
	CodeAppointmentNotFound:  {http.StatusNotFound, "Agendamento não encontrado."},
	CodeValidation:           {http.StatusBadRequest, "Dados inválidos."},
	CodeInvalidDate:          {http.StatusBadRequest, "Data inválida."},
	CodeInvalidTime:          {http.StatusBadRequest, "Horário inválido."},
	CodeSlotUnavailable:      {http.StatusConflict, "Horário não disponível."},
	CodeInvalidState:         {http.StatusBadRequest, "Operação não permitida para o status atual."},
	CodePaymentsUnavailable:  {http.StatusServiceUnavailable, "Pagamentos não configurados."},
	CodeStorageUnavailable:   {http.StatusServiceUnavailable, "Armazenamento não configurado."},
}

// FromBusiness writes the response for err. Business errors map to their
// status and message; anything else is a 500 carrying fallbackCode.
func FromBusiness(c *gin.Context, err error, fallbackCode string) {
	code := CodeOf(err)
	if m, ok := businessMappings[code]; ok {
		Write(c, m.status, code, m.message)
		return
	}
	Internal(c, fallbackCode, "Erro interno.")
}
