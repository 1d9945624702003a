package profiles

import (
	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

var mobile = []catalog.Constructor{
	define(mobileFlutter),
	define(mobileReactNative),
}

func androidSDK() model.Component {
	return model.Component{
		ID: "android-sdk", Name: "Android SDK", Category: "sdk", Version: "latest",
		Description:    "Command-line tools, platform tools and an emulator image",
		DownloadSizeMB: 1800, InstallTimeMinutes: 15,
		InstallMethods: []string{"brew:android-commandlinetools", "sdkmanager"},
	}
}

func mobileFlutter() *model.Profile {
	return &model.Profile{
		ID:           "mobile-flutter",
		Name:         "Flutter Mobile Development",
		Description:  "Flutter SDK with the Android toolchain for cross-platform apps",
		Category:     model.CategoryMobile,
		Requirements: model.Requirements{RAMGB: 8, DiskGB: 30, CPUCores: 4},
		Dependencies: []string{"java"},
		Components: []model.Component{
			{
				ID: "flutter", Name: "Flutter SDK", Category: "sdk", Version: ">=3.19.0",
				DownloadSizeMB: 900, InstallTimeMinutes: 8,
				InstallMethods: []string{"brew:flutter", "snap:flutter", "git:https://github.com/flutter/flutter.git"},
			},
			androidSDK(),
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Flutter doctor", Command: "flutter doctor", ContainsText: "Flutter"},
		},
	}
}

func mobileReactNative() *model.Profile {
	return &model.Profile{
		ID:           "mobile-react-native",
		Name:         "React Native Development",
		Description:  "React Native CLI with Watchman and the Android toolchain",
		Category:     model.CategoryMobile,
		Requirements: model.Requirements{RAMGB: 8, DiskGB: 25, CPUCores: 4},
		Dependencies: []string{"nodejs", "java"},
		Components: []model.Component{
			{
				ID: "watchman", Name: "Watchman", Category: "tooling", Version: "latest",
				DownloadSizeMB: 30, InstallTimeMinutes: 2,
				InstallMethods: []string{"brew", "apt"},
			},
			androidSDK(),
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "React Native CLI", Command: "npx react-native --version"},
		},
	}
}
