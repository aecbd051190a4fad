// Package chains lists the EVM networks the dashboard knows how to talk to.
package chains

// UnsupportedName is the display name returned for unknown chain ids.
const UnsupportedName = "Unsupported Network"

// Chain describes a supported EVM network.
type Chain struct {
	// ID is the EIP-155 chain id.
	ID int64
	// Name is the human-readable network name.
	Name string
	// NativeSymbol is the ticker of the native currency.
	NativeSymbol string
	// NativeDecimals is the number of decimals of the native currency.
	NativeDecimals int32
	// Testnet marks test networks.
	Testnet bool
	// ExplorerAPI is the Etherscan-compatible API endpoint for the network.
	ExplorerAPI string
	// ExplorerURL is the public block explorer URL.
	ExplorerURL string
}

//nolint: gochecknoglobals
var (
	// Polygon is the Polygon PoS mainnet.
	Polygon = Chain{
		ID:             137,
		Name:           "Polygon",
		NativeSymbol:   "MATIC",
		NativeDecimals: 18,
		ExplorerAPI:    "https://api.polygonscan.com/api",
		ExplorerURL:    "https://polygonscan.com",
	}
	// PolygonMumbai is the Polygon Mumbai testnet.
	PolygonMumbai = Chain{
		ID:             80001,
		Name:           "Polygon Mumbai",
		NativeSymbol:   "MATIC",
		NativeDecimals: 18,
		Testnet:        true,
		ExplorerAPI:    "https://api-testnet.polygonscan.com/api",
		ExplorerURL:    "https://mumbai.polygonscan.com",
	}
)

// Supported returns the supported networks in display order.
func Supported() []Chain {
	return []Chain{Polygon, PolygonMumbai}
}

// Default returns the network the dashboard expects wallets to be on.
func Default() Chain {
	return PolygonMumbai
}

// ByID looks up a supported chain.
func ByID(id int64) (Chain, bool) {
	for _, c := range Supported() {
		if c.ID == id {
			return c, true
		}
	}

	return Chain{}, false
}

// IsSupported reports whether id is one of the supported networks.
func IsSupported(id int64) bool {
	_, ok := ByID(id)

	return ok
}

// Name resolves a chain id to its display name, or UnsupportedName.
func Name(id int64) string {
	if c, ok := ByID(id); ok {
		return c.Name
	}

	return UnsupportedName
}
