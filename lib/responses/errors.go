package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var UnknownVoucherTypeError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "unknown voucher type",
	HttpStatusCode: 400,
}

var UnbalancedVoucherError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "voucher entries do not balance: total debits must equal total credits",
	HttpStatusCode: 400,
}

var TooFewEntriesError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "a voucher needs at least one debit and one credit entry",
	HttpStatusCode: 400,
}

var LedgerNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "one or more referenced ledgers do not exist",
	HttpStatusCode: 400,
}

var DuplicateVoucherNumberError = ErrorResponse{
	Error:          true,
	Code:           4,
	Message:        "a voucher with this number already exists",
	HttpStatusCode: 400,
}

// SaveVoucherError keeps the driver error out of the response body, the
// full error is only written to the server log.
var SaveVoucherError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Failed to save voucher",
	HttpStatusCode: 500,
}

var SaveReturnError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Failed to save TDS return",
	HttpStatusCode: 500,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// isErrAllowedForSentry filters out plain client errors so they do not
// drown out real failures in the issue tracker.
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	return he.Code >= http.StatusInternalServerError
}
