package algebra_test

import (
	"crypto/rand"
	"math/big"

	. "github.com/onsi/ginkgo/extensions/table"
)

// RandomValue returns a uniformly random integer in [0, 2^96), large enough
// to exercise reduction modulo every prime in PrimeEntries.
func RandomValue() *big.Int {
	max := big.NewInt(0).Lsh(big.NewInt(1), 96)
	r, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(err)
	}
	return r
}

// PrimeEntries is a list of table entries of prime moduli, ranging from the
// smallest field GF(2) up to 64-bit primes.
var PrimeEntries = []TableEntry{
	Entry("for the field defined by the prime 2", big.NewInt(2)),
	Entry("for the field defined by the prime 3", big.NewInt(3)),
	Entry("for the field defined by the prime 7", big.NewInt(7)),
	Entry("for the field defined by the prime 101", big.NewInt(101)),
	Entry("for the field defined by the prime 257", big.NewInt(257)),
	Entry("for the field defined by the prime 65537", big.NewInt(65537)),
	Entry("for the field defined by the prime 4294967311", big.NewInt(4294967311)),
	Entry("for the field defined by the prime 2305843009213693951", big.NewInt(2305843009213693951)),
	Entry("for the field defined by the prime 18446744073709551557", big.NewInt(0).SetUint64(uint64(18446744073709551557))),
	Entry("for the field defined by the prime 11415648579556416673", big.NewInt(0).SetUint64(uint64(11415648579556416673))),
	Entry("for the field defined by the prime 10891814531730287201", big.NewInt(0).SetUint64(uint64(10891814531730287201))),
}

// CompositeEntries is a list of table entries of composite moduli, including
// a Carmichael number and a Fermat number with a known factorisation.
var CompositeEntries = []TableEntry{
	Entry("for the composite modulus 4", big.NewInt(4)),
	Entry("for the composite modulus 9", big.NewInt(9)),
	Entry("for the composite modulus 15", big.NewInt(15)),
	Entry("for the composite modulus 100", big.NewInt(100)),
	Entry("for the composite modulus 561", big.NewInt(561)),
	Entry("for the composite modulus 4294967297", big.NewInt(4294967297)),
}

// SmallPrimeEntries is the subset of PrimeEntries small enough for exhaustive
// enumeration of the whole field.
var SmallPrimeEntries = []TableEntry{
	Entry("for the field defined by the prime 2", big.NewInt(2)),
	Entry("for the field defined by the prime 3", big.NewInt(3)),
	Entry("for the field defined by the prime 7", big.NewInt(7)),
	Entry("for the field defined by the prime 101", big.NewInt(101)),
}
