package driven

// Keys of the on-device state store. The names match what the backend's
// mobile clients have always written, so a store directory survives an app
// swap.
const (
	KeyAuthToken       = "authToken"
	KeyDriverID        = "id"
	KeyUser            = "user"
	KeyUserLocation    = "userLocation"
	KeyLocationEnabled = "locationEnabled"
)

// IStateStore is the persisted key-value cache for session and location
// state. Get returns "" with a nil error for a missing key.
type IStateStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
