package profiles

import (
	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

var web3 = []catalog.Constructor{
	define(web3Solidity),
}

func web3Solidity() *model.Profile {
	return &model.Profile{
		ID:           "web3-solidity",
		Name:         "Solidity Development",
		Description:  "Ethereum smart contract development with Hardhat and Foundry",
		Category:     model.CategoryWeb3,
		Requirements: model.Requirements{RAMGB: 8, DiskGB: 15, CPUCores: 4},
		Dependencies: []string{"nodejs"},
		Components: []model.Component{
			{
				ID: "solc", Name: "Solidity compiler", Category: "compiler", Version: ">=0.8.0",
				DownloadSizeMB: 30, InstallTimeMinutes: 2,
				InstallMethods: []string{"brew:solidity", "npm:solc"},
			},
			{
				ID: "hardhat", Name: "Hardhat", Category: "framework", Version: "latest",
				DownloadSizeMB: 80, InstallTimeMinutes: 3,
				InstallMethods: []string{"npm:hardhat"},
			},
			{
				ID: "foundry", Name: "Foundry", Category: "framework", Version: "latest",
				Description:    "forge, cast and anvil",
				DownloadSizeMB: 120, InstallTimeMinutes: 5,
				InstallMethods: []string{"curl:https://foundry.paradigm.xyz", "brew"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Solidity compiler", Command: "solc --version", ContainsText: "Version: 0.8"},
			{Name: "Foundry", Command: "forge --version", ContainsText: "forge"},
		},
	}
}
