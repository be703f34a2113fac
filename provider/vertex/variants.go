package vertex

// Preset constructors for the supported models. Each pins the model
// identifier, and the multimodal flag where the model accepts images.
// Later options still apply, so presets compose with WithProject etc.

// NewGeminiPro15 creates an adapter for Gemini 1.5 Pro (multimodal).
func NewGeminiPro15(opts ...Option) (*Adapter, error) {
	return New("gemini-1.5-pro-preview-0409", append([]Option{WithMultimodal(true)}, opts...)...)
}

// NewGeminiPro1 creates an adapter for Gemini 1.0 Pro.
func NewGeminiPro1(opts ...Option) (*Adapter, error) {
	return New("gemini-1.0-pro", opts...)
}

// NewGeminiPro1Vision creates an adapter for Gemini 1.0 Pro Vision
// (multimodal).
func NewGeminiPro1Vision(opts ...Option) (*Adapter, error) {
	return New("gemini-1.0-pro-vision", append([]Option{WithMultimodal(true)}, opts...)...)
}

// NewPalm2 creates an adapter for the PaLM 2 text model.
func NewPalm2(opts ...Option) (*Adapter, error) {
	return New("text-bison", opts...)
}

// NewPalm2_32K creates an adapter for the PaLM 2 text model with 32K
// context length.
func NewPalm2_32K(opts ...Option) (*Adapter, error) {
	return New("text-bison-32k", opts...)
}
