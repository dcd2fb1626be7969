package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by the owner of some assets or records but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrIssuerWitnessFailed appears when the method must be called
	// by the issuer of a token but was not.
	ErrIssuerWitnessFailed = "issuer witness check failed"
	// ErrContractOwnerWitnessFailed appears when the method must be
	// called by the contract owner but was not.
	ErrContractOwnerWitnessFailed = "contract owner witness check failed"
)

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckIssuerWitness checks witness of the passed token issuer.
// It panics with ErrIssuerWitnessFailed message on fail.
func CheckIssuerWitness(issuer []byte) {
	checkWitnessWithPanic(issuer, ErrIssuerWitnessFailed)
}

// CheckContractOwnerWitness checks witness of the contract owner.
// It panics with ErrContractOwnerWitnessFailed message on fail.
func CheckContractOwnerWitness(owner []byte) {
	checkWitnessWithPanic(owner, ErrContractOwnerWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
