package profiles

import (
	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

var data = []catalog.Constructor{
	define(dataScience),
	define(mlDeepLearning),
}

func dataScience() *model.Profile {
	return &model.Profile{
		ID:           "data-science",
		Name:         "Data Science",
		Description:  "Jupyter, pandas and scikit-learn on top of Python",
		Category:     model.CategoryData,
		Requirements: model.Requirements{RAMGB: 8, DiskGB: 10, CPUCores: 2},
		Dependencies: []string{"python"},
		Components: []model.Component{
			{
				ID: "jupyterlab", Name: "JupyterLab", Category: "notebook", Version: ">=4.0.0",
				DownloadSizeMB: 90, InstallTimeMinutes: 3,
				InstallMethods: []string{"pipx:jupyterlab", "pip", "brew"},
			},
			{
				ID: "pandas", Name: "pandas", Category: "library", Version: ">=2.0.0",
				DownloadSizeMB: 60, InstallTimeMinutes: 2,
				InstallMethods: []string{"pip"},
			},
			{
				ID: "scikit-learn", Name: "scikit-learn", Category: "library", Version: "latest",
				DownloadSizeMB: 70, InstallTimeMinutes: 2,
				DependsOn:      []string{"pandas"},
				InstallMethods: []string{"pip"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "JupyterLab", Command: "jupyter lab --version"},
			{Name: "pandas", Command: `python3 -c "import pandas; print(pandas.__version__)"`, ContainsText: "2."},
		},
	}
}

func mlDeepLearning() *model.Profile {
	return &model.Profile{
		ID:           "ml-deep-learning",
		Name:         "Deep Learning",
		Description:  "PyTorch and the Hugging Face stack for training and fine-tuning models",
		Category:     model.CategoryData,
		Requirements: model.Requirements{RAMGB: 16, DiskGB: 40, CPUCores: 8},
		Dependencies: []string{"data-science"},
		Components: []model.Component{
			{
				ID: "pytorch", Name: "PyTorch", Category: "framework", Version: ">=2.2.0",
				DownloadSizeMB: 2200, InstallTimeMinutes: 12,
				InstallMethods: []string{"pip:torch", "conda:pytorch"},
			},
			{
				ID: "transformers", Name: "Transformers", Category: "library", Version: "latest",
				DownloadSizeMB: 50, InstallTimeMinutes: 2,
				DependsOn:      []string{"pytorch"},
				InstallMethods: []string{"pip"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "PyTorch", Command: `python3 -c "import torch; print(torch.__version__)"`, ContainsText: "2."},
		},
	}
}
