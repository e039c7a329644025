// Package vectors holds cross-implementation known-answer vectors for
// key derivation, addressing and signing. Any conforming wallet
// implementation must reproduce these outputs from the given inputs.
//
// SECURITY: The keys and phrases here are public test material. Never
// fund them.
package vectors

// ZeroAddressBech32 is the 20-byte zero payload rendered under the
// "cosmos" prefix.
const ZeroAddressBech32 = "cosmos1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqnrql8a"

// SecretKey is the key derived from the ASCII secret "mySecret" via
// SHA-256 reduction into the curve order.
var SecretKey = struct {
	Secret       string
	PublicKeyHex string
	Address      string
	AminoBech32  string
}{
	Secret:       "mySecret",
	PublicKeyHex: "029651a9aac4c22b27b3019aee6df746266e1ae746ee79772a6e5ead198ebd07c3",
	Address:      "cosmos1nx7vqq8hsy8chwe27mcr4cmazdwus7zjl2ds0p",
	AminoBech32:  "cosmospub1addwnpepq2t9r2d2cnpzkfanqxdwum0hgcnxuxh8gmh8jae2de026xvwh5ruxuv5let",
}

// Bip32Hardened is BIP-32 test vector 1: a 16-byte seed, its master
// key, and the first hardened child.
var Bip32Hardened = struct {
	SeedHex           string
	MasterSecretHex   string
	MasterChainHex    string
	ChildM0hSecretHex string
}{
	SeedHex:           "000102030405060708090a0b0c0d0e0f",
	MasterSecretHex:   "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35",
	MasterChainHex:    "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508",
	ChildM0hSecretHex: "edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea",
}

// Bip32Unhardened is BIP-32 test vector 2: a 64-byte seed and the first
// non-hardened child.
var Bip32Unhardened = struct {
	SeedHex         string
	MasterSecretHex string
	ChildM0Secret   string
}{
	SeedHex: "fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a2" +
		"9f9c999693908d8a8784817e7b7875726f6c696663605d5a5754514e4b484542",
	MasterSecretHex: "4b03d6fc340455b363f51020ad3ecca4f0850280cf436c70c727923f6db46c3e",
	ChildM0Secret:   "abe74a98f6c7eabee0428f53798f0ab8aa1bd37873999041703c742f15ac7e1e",
}

// CosmosWallet is a 24-word English phrase with its account under the
// default Cosmos path m/44'/118'/0'/0/0.
var CosmosWallet = struct {
	Phrase      string
	Address     string
	AminoBech32 string
}{
	Phrase: "purse sure leg gap above pull rescue glass circle attract erupt " +
		"can sail gasp shy clarify inflict anger sketch hobby scare mad reject where",
	Address:     "cosmos1t0sgxmpxafdfjd3k6kgg50kdgn4muh5t0phml6",
	AminoBech32: "cosmospub1addwnpepqfn2xmm5g2uackkn62ew309n3paf0xzhug6xshv4a4yq4algm9ksugt2dx6",
}

// EthermintWallet is a 24-word English phrase with its account under
// the Ethereum path m/44'/60'/0'/0/0 and an Ethermint address rule.
var EthermintWallet = struct {
	Phrase  string
	Prefix  string
	Address string
}{
	Phrase: "whisper unknown entire effort supreme believe supply position noble radar " +
		"badge check cotton spider affair muffin gold bird trust venue hub core they veteran",
	Prefix:  "evmos",
	Address: "evmos1zkunj49253lc6wgm0gp5nk8kj2naat0j8fzkfa",
}

// AminoPubKey is a standalone amino-bech32 public key pair.
var AminoPubKey = struct {
	PublicKeyHex string
	Bech32       string
}{
	PublicKeyHex: "02a1633cafcc01ebfb6d78e39f687a1f0995c62fc95f51ead10a02ee0be551b5dc",
	Bech32:       "cosmospub1addwnpepq2skx090esq7h7md0r3e76r6ruyet330e904r6k3pgpwuzl92x6actrt4uq",
}

// InsufficientFeesRawLog is a node rejection whose raw log carries the
// minimum fee list.
const InsufficientFeesRawLog = "insufficient fees; got: 1foo required: 50000ualtg,250000ufootoken: insufficient fee"
