package model

// NetworkID is the numeric identifier of a ledger network.
type NetworkID uint8

const (
	Mainnet  NetworkID = 1
	Stokenet NetworkID = 2
)

// NetworkInfo describes the address encoding and native resource of a network.
type NetworkInfo struct {
	ID        NetworkID
	Name      string
	HRPSuffix string
	XRD       ResourceAddress
}

var networks = map[NetworkID]NetworkInfo{
	Mainnet: {
		ID:        Mainnet,
		Name:      "mainnet",
		HRPSuffix: "rdx",
		XRD:       "resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd",
	},
	Stokenet: {
		ID:        Stokenet,
		Name:      "stokenet",
		HRPSuffix: "tdx_2_",
		XRD:       "resource_tdx_2_1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxtfd2jc",
	},
}

// Info returns the network description for known networks.
func (n NetworkID) Info() (NetworkInfo, bool) {
	info, ok := networks[n]
	return info, ok
}

// XRD returns the native resource address of the network, or "" for unknown networks.
func (n NetworkID) XRD() ResourceAddress {
	return networks[n].XRD
}

func (n NetworkID) String() string {
	if info, ok := networks[n]; ok {
		return info.Name
	}
	return "unknown"
}
