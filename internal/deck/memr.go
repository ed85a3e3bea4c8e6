package deck

import "time"

// Image file names looked up in the image directory at run time.
const (
	LogicGatesImage     = "lissajous_logic_gates.png"
	HardwareDesignImage = "lissajous_hardware_design_frequency_multiplexing_demo.png"
)

// MemR returns the built-in tec-memR deck. now fills the date line on the
// opening slide.
func MemR(now time.Time) *Deck {
	return &Deck{
		Title:  "tec-memR: Memristor Research Project",
		Author: "Steve",
		Images: []ImageEntry{
			{Key: "logic_gates", Path: LogicGatesImage},
			{Key: "hardware_design", Path: HardwareDesignImage},
		},
		Slides: []Slide{
			{
				Title: "tec-memR: Memristor Research Project",
				Body: []string{
					"Advanced Memristor Computing & Neural Networks",
					"Lissajous Phase-Based Hardware Implementation",
					"DIY Construction & Z80 Integration",
					"",
					"Presented by: Steve",
					"Date: " + now.Format("January 2006"),
				},
			},
			{
				Title: "What is a Memristor?",
				Body: []string{
					"• Passive two-terminal electronic component",
					"• Resistance changes based on voltage/current history",
					"• Acts as non-volatile memory element",
					"• Ideal for neuromorphic computing",
					"• Enables in-memory processing",
					"",
					"Key Property: 'Remembers' its last state without power",
				},
			},
			{
				Title: "Project Components",
				Body: []string{
					"1. DIY Memristor Construction",
					"   - Copper-sulfide method",
					"   - Simple fabrication process",
					"",
					"2. Lissajous Phase Neural Networks",
					"   - Novel computing architecture",
					"   - Wave-based computation",
					"",
					"3. Hardware Integration",
					"   - Z80 microprocessor interface",
					"   - Crossbar array implementation",
				},
			},
			{
				Title: "DIY Memristor: Copper-Sulfide Method",
				Body: []string{
					"Materials (Under $20):",
					"• Copper PCB or sheet",
					"• Sulfur powder",
					"• Isopropyl alcohol",
					"",
					"Process:",
					"1. Clean copper surface",
					"2. Apply sulfur slurry (12-24 hours)",
					"3. Form black copper sulfide layer",
					"4. Attach electrodes",
					"5. Test with pinched hysteresis loop",
				},
			},
			{
				Title: "Lissajous Phase Neural Network",
				Body: []string{
					"Revolutionary Approach:",
					"• Uses phase relationships for computation",
					"• Frequency-division multiplexing (FDM)",
					"• Massive parallelism via wave superposition",
					"",
					"Key Advantage:",
					"Each wire can carry MANY parallel computations",
					"simultaneously at different frequencies",
					"",
					"Implemented logic gates: AND, OR, XOR, NAND",
				},
				Image: "logic_gates",
			},
			{
				Title: "Scaling Analysis: Frequency Multiplexing",
				Body: []string{
					"Technology     | Bandwidth  | Neurons Possible",
					"--------------------------------------------",
					"Analog (audio) | 100 kHz    | 1,000",
					"RF (wireless)  | 10 GHz     | 100,000,000",
					"Optical (fiber)| 100 THz    | 1,000,000,000,000",
					"",
					"MASSIVE parallelism through wave superposition!",
					"",
					"Current implementation: 4 neurons @ 1-4 kHz",
				},
			},
			{
				Title: "Hardware Implementation Options",
				Body: []string{
					"1. FPGA (Fastest to prototype)",
					"   - ~1000 neurons @ 100 MHz",
					"   - Cost: ~$100 dev board",
					"",
					"2. Analog ASIC (Ultimate efficiency)",
					"   - 10,000 neurons in 5mm × 5mm chip",
					"   - 10 TOPS, only 10mW power",
					"",
					"3. Memristor Crossbar (Current focus!)",
					"   - Physical wave computation",
					"",
					"4. Photonic (Future work)",
					"   - Speed of light computation",
				},
				Image: "hardware_design",
			},
			{
				Title: "Memristor Crossbar Architecture",
				Body: []string{
					"KEY INSIGHT: Memristor state = Phase shift",
					"",
					"Architecture:",
					"• N×M crossbar array",
					"• AC voltage on rows (inputs)",
					"• Current summing on columns (outputs)",
					"• Each junction: learnable phase element",
					"",
					"Advantages:",
					"✓ Natural phase computation",
					"✓ No external phase shifters needed",
					"✓ Non-volatile (retains state)",
					"✓ Training via simple voltage pulses",
				},
			},
			{
				Title: "Z80 Microprocessor Integration",
				Body: []string{
					"Hybrid Analog-Digital System:",
					"",
					"Z80 Role:",
					"• Controls DC programming pulses",
					"• Sets memristor states",
					"• Reads ADC outputs",
					"• Orchestrates computation",
					"",
					"Memristor Array:",
					"• Performs analog computation",
					"• Physical wave interference",
					"• Natural parallel processing",
				},
			},
			{
				Title: "Current Achievements",
				Body: []string{
					"✓ Software simulation in Octave/MATLAB",
					"✓ Logic gates implementation (AND, OR, XOR, NAND)",
					"✓ Frequency multiplexing demonstration",
					"✓ Lissajous curve visualization",
					"✓ Hardware design documentation",
					"✓ Z80 assembly interface code",
					"",
					"Generated Visualizations:",
					"• Logic gate phase patterns",
					"• Frequency multiplexing spectrum",
					"• Hardware design diagrams",
				},
			},
			{
				Title: "Implementation Roadmap",
				Body: []string{
					"Phase 1: Software Validation ✓",
					"  - Logic gates working in Octave",
					"",
					"Phase 2: Arduino Prototype",
					"  - Build 4-input neuron",
					"",
					"Phase 3: Memristor Integration",
					"  - 2×2 crossbar array",
					"  - Z80 interface",
					"",
					"Phase 4: FPGA Accelerator",
					"  - 100+ neuron scaling",
					"",
					"Phase 5: Publication & Open Source",
				},
			},
			{
				Title: "Technical Innovations",
				Body: []string{
					"Novel Contributions:",
					"",
					"1. Phase-coded memristor computing",
					"   - Using AC impedance for computation",
					"",
					"2. Frequency-division neural multiplexing",
					"   - Massive parallelism in single wire",
					"",
					"3. DIY memristor fabrication",
					"   - Accessible, low-cost method",
					"",
					"4. Retro-computing integration",
					"   - Z80 + modern memristor tech",
				},
			},
			{
				Title: "Applications",
				Body: []string{
					"Neuromorphic Computing:",
					"• Pattern recognition",
					"• Analog neural networks",
					"• In-memory computation",
					"",
					"Research & Education:",
					"• Physics demonstrations",
					"• DIY electronics projects",
					"• Academic publications",
					"",
					"Future Possibilities:",
					"• Edge AI acceleration",
					"• Ultra-low-power computing",
				},
			},
			{
				Title: "Next Steps",
				Body: []string{
					"Immediate Goals:",
					"",
					"1. Build Arduino prototype (4-neuron demo)",
					"",
					"2. Fabricate 2×2 memristor crossbar",
					"",
					"3. Implement Z80 control interface",
					"",
					"4. Demonstrate XOR learning",
					"",
					"5. Document results for publication",
				},
			},
			{
				Title: "Questions & Discussion",
				Body: []string{
					"",
					"",
					"Thank you!",
					"",
					"",
					"Project: tec-memR",
					"Memristor Research & Neural Computing",
					"",
					"",
					"Open for questions and collaboration",
				},
			},
		},
	}
}
