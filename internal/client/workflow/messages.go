package workflow

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
)

const (
	errorPrefix = "Error did occur: "

	msgDeleted = "Award is deleted."
)

// DeleteConfirmation is the prompt shown before an award is deleted.
var DeleteConfirmation = models.Confirmation{
	Title:            "Delete Award?",
	Message:          "You are going to delete an award. It will not be possible to recover an award, and every user will lose this award.",
	AffirmativeLabel: "Delete",
	Size:             "small",
}

func createdMessage(name string) string {
	return fmt.Sprintf(`Award "%s" is successfully created.`, name)
}

func updatedMessage(name string) string {
	return fmt.Sprintf(`Award "%s" is successfully updated.`, name)
}

func errorMessage(err error) string {
	return errorPrefix + err.Error()
}

// serializedErrorMessage renders err as JSON. Errors that know their own
// JSON form (remote errors carry a code and message) use it; others are
// encoded as a JSON string.
func serializedErrorMessage(err error) string {
	var m json.Marshaler
	if errors.As(err, &m) {
		if b, jerr := json.Marshal(m); jerr == nil {
			return errorPrefix + string(b)
		}
	}
	b, _ := json.Marshal(err.Error())
	return errorPrefix + string(b)
}
