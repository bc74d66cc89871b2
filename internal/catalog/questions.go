package catalog

import "github.com/akshad/studyquest/internal/challenge"

// DefaultBank is the bank new profiles start with.
const DefaultBank = "biology"

func q(id, prompt string, choices [4]string, answer int, d challenge.Difficulty, category string) challenge.Question {
	return challenge.Question{
		ID:         id,
		Prompt:     prompt,
		Choices:    choices[:],
		Answer:     answer,
		Difficulty: d,
		Category:   category,
	}
}

// Questions returns the seed questions for a bank name, or nil for an
// unknown bank.
func Questions(bank string) []challenge.Question {
	if bank != DefaultBank {
		return nil
	}
	return seedBiology()
}

func seedBiology() []challenge.Question {
	return []challenge.Question{
		q("bio-001", "Which organelle is known as the powerhouse of the cell?",
			[4]string{"Mitochondrion", "Ribosome", "Nucleus", "Golgi apparatus"}, 0, challenge.Easy, "cells"),
		q("bio-002", "What molecule carries genetic information?",
			[4]string{"ATP", "DNA", "Glucose", "Collagen"}, 1, challenge.Easy, "genetics"),
		q("bio-003", "Which gas do plants absorb during photosynthesis?",
			[4]string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"}, 2, challenge.Easy, "plants"),
		q("bio-004", "What is the basic unit of life?",
			[4]string{"Atom", "Molecule", "Organ", "Cell"}, 3, challenge.Easy, "cells"),
		q("bio-005", "How many chambers does the human heart have?",
			[4]string{"Two", "Three", "Four", "Five"}, 2, challenge.Easy, "anatomy"),
		q("bio-006", "Which blood cells fight infection?",
			[4]string{"White blood cells", "Red blood cells", "Platelets", "Plasma cells"}, 0, challenge.Easy, "anatomy"),
		q("bio-007", "Where in the cell does glycolysis occur?",
			[4]string{"Mitochondrial matrix", "Cytoplasm", "Nucleus", "Endoplasmic reticulum"}, 1, challenge.Medium, "cells"),
		q("bio-008", "What is the complementary DNA strand to ATTGC?",
			[4]string{"TAACG", "ATTGC", "CGTTA", "GCAAT"}, 0, challenge.Medium, "genetics"),
		q("bio-009", "Which phase of mitosis aligns chromosomes at the cell equator?",
			[4]string{"Prophase", "Telophase", "Metaphase", "Anaphase"}, 2, challenge.Medium, "cells"),
		q("bio-010", "What pigment absorbs light energy in photosynthesis?",
			[4]string{"Carotene", "Melanin", "Hemoglobin", "Chlorophyll"}, 3, challenge.Medium, "plants"),
		q("bio-011", "Which enzyme unwinds the DNA double helix during replication?",
			[4]string{"Helicase", "Ligase", "Polymerase", "Primase"}, 0, challenge.Medium, "genetics"),
		q("bio-012", "What structure connects muscle to bone?",
			[4]string{"Ligament", "Tendon", "Cartilage", "Fascia"}, 1, challenge.Medium, "anatomy"),
		q("bio-013", "In which organ does the Krebs cycle's acetyl-CoA primarily originate from pyruvate?",
			[4]string{"Any cell's mitochondria", "Only liver cells", "Only muscle cells", "Red blood cells"}, 0, challenge.Hard, "cells"),
		q("bio-014", "A cross of two heterozygotes (Aa x Aa) yields what phenotype ratio with complete dominance?",
			[4]string{"1:1", "1:2:1", "3:1", "9:3:3:1"}, 2, challenge.Hard, "genetics"),
		q("bio-015", "Which plant tissue transports sugars from source to sink?",
			[4]string{"Xylem", "Phloem", "Epidermis", "Meristem"}, 1, challenge.Hard, "plants"),
		q("bio-016", "What is the resting membrane potential of a typical neuron?",
			[4]string{"+40 mV", "0 mV", "-20 mV", "-70 mV"}, 3, challenge.Hard, "anatomy"),
		q("bio-017", "Which process produces genetically distinct gametes via crossing over?",
			[4]string{"Meiosis", "Mitosis", "Binary fission", "Budding"}, 0, challenge.Hard, "genetics"),
		q("bio-018", "Which hormone regulates blood glucose by promoting cellular uptake?",
			[4]string{"Glucagon", "Cortisol", "Insulin", "Adrenaline"}, 2, challenge.Hard, "anatomy"),
	}
}
