package edge

type Status struct {
	Enabled      bool   `json:"enabled"`
	Mode         string `json:"mode"`
	ModelsLoaded int    `json:"models_loaded"`
	CacheSize    int    `json:"cache_size"`
	Message      string `json:"message"`
}

type Model struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Size   string `json:"size"`
	Status string `json:"status"`
	Type   string `json:"type"`
}
