package identity

// FailureKind classifies why a patient save did not go through.
type FailureKind string

const (
	FailureValidation FailureKind = "validation"
	FailureIdentity   FailureKind = "identity"
	FailureStorage    FailureKind = "storage"
)

// Failure carries the kind and human-readable message of a failed save.
type Failure struct {
	Kind FailureKind
	Msg  string
}

// SaveResult is the outcome of SavePatient. Exactly one of Patient or Failure
// is set; callers branch on OK instead of inspecting paired booleans.
type SaveResult struct {
	Patient *Patient
	Failure *Failure
}

func (r SaveResult) OK() bool {
	return r.Failure == nil
}

// Response is the legacy triple the form-handling frontend consumes.
type Response struct {
	Success bool   `json:"success"`
	Error   bool   `json:"error"`
	Msg     string `json:"msg"`
}

// Response flattens the result into the {success, error, msg} contract.
func (r SaveResult) Response() Response {
	if r.Failure != nil {
		return Response{Success: false, Error: true, Msg: r.Failure.Msg}
	}
	return Response{Success: true, Error: false, Msg: "Patient info updated successfully"}
}
