package apikeys

import (
	"errors"
	"log"
	"sync"
)

var ErrNoKeysAvailable = errors.New("no API keys available")
var ErrAllKeysExhausted = errors.New("all available API keys have been exhausted")

// KeyManager rotates voice-API credentials when one hits a quota or auth
// failure, so a single exhausted key does not take the provider down.
type KeyManager struct {
	keys         []string
	currentIndex int
	mutex        sync.Mutex
}

func NewManager(keys []string) (*KeyManager, error) {
	if len(keys) == 0 || (len(keys) == 1 && keys[0] == "") {
		return nil, ErrNoKeysAvailable
	}
	return &KeyManager{keys: keys}, nil
}

// CurrentKey returns the currently active credential.
func (km *KeyManager) CurrentKey() string {
	km.mutex.Lock()
	defer km.mutex.Unlock()
	return km.keys[km.currentIndex]
}

// Rotate moves to the next credential. It returns ErrAllKeysExhausted after
// looping through every key, resetting to the first for the next request.
func (km *KeyManager) Rotate() error {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	log.Printf("Voice API key %d has failed or is exhausted. Rotating to the next key.", km.currentIndex+1)
	km.currentIndex++

	if km.currentIndex >= len(km.keys) {
		log.Println("WARNING: All voice API keys have been tried and failed.")
		km.currentIndex = 0
		return ErrAllKeysExhausted
	}

	log.Printf("Switched to voice API key %d.", km.currentIndex+1)
	return nil
}

// Count reports how many credentials are configured; callers bound their
// attempt loops with it.
func (km *KeyManager) Count() int {
	return len(km.keys)
}
