package content

import (
	"pptgen/deck"
)

const (
	// OutputName is the name of the file produced when nothing else is requested.
	OutputName = "ChainCare_Presentation"

	footer = "Final Year Project | Computer Science & Engineering | January 2026"
)

// Metadata describes the ChainCare deck in document properties.
var Metadata = deck.Metadata{
	Title:   "ChainCare",
	Subject: "Blockchain-Secured Medical Records Management System",
}

// ChainCare builds the project presentation deck.
func ChainCare(opts ...deck.Option) (*deck.Deck, error) {
	b := newBuilder(deck.New(append([]deck.Option{deck.WithMetadata(Metadata)}, opts...)...))

	// Title Slide
	b.title("ChainCare",
		"Blockchain-Secured Medical Records Management System",
		[]string{
			"Team Members:",
			"• [Member 1] - Authentication & User Management",
			"• [Member 2] - Medical Records & Data Management",
			"• [Member 3] - Blockchain Audit Trail & Verification",
			"• [Member 4] - AI Clinical Assistants & Doctor Workflow",
		},
		footer, "")

	// Problem Statement
	b.content("Problem Statement",
		[]string{
			"❌ DATA FRAGMENTATION",
			"  Patient reports scattered across hospitals",
			"  No centralized access for emergencies",
			"",
			"❌ SECURITY CONCERNS",
			"  Paper records easily lost/tampered",
			"  Digital records vulnerable to unauthorized access",
			"",
			"❌ TRUST ISSUES",
			"  Cannot verify if records were altered",
			"  No audit trail of who accessed data when",
			"",
			"❌ INFORMATION ASYMMETRY",
			"  Patients don't understand medical jargon",
			"  Doctors spend time re-diagnosing",
		},
		"Real-world examples: lost prescriptions during emergencies, data breaches in hospitals")

	// Our Solution
	b.content("Our Solution - ChainCare",
		[]string{
			"A Complete Medical Records Ecosystem",
			"",
			"✅ SECURE STORAGE",
			"  Cloud-based (Firebase) accessible anywhere",
			"  AES-256 encryption at rest and in transit",
			"",
			"✅ BLOCKCHAIN AUDIT TRAIL",
			"  Immutable record of all data access",
			"  Polygon blockchain verification",
			"",
			"✅ AI-POWERED ASSISTANCE",
			"  Doctor Clinical Assistant (data analysis)",
			"  Patient Medical Assistant (education)",
			"",
			"✅ SMART CONSENT",
			"  QR-based patient consent",
			"  Every access logged and traceable",
		},
		"Emphasize multi-faceted approach - not just storage, but complete ecosystem")

	// System Architecture
	b.content("System Architecture",
		[]string{
			"4-Layer Architecture",
			"",
			"Layer 1: FRONTEND",
			"  Flutter Mobile App (iOS & Android)",
			"",
			"Layer 2: BACKEND - Firebase Ecosystem",
			"  • Authentication (Email, OAuth, Phone OTP)",
			"  • Firestore Database (NoSQL documents)",
			"  • Cloud Storage (medical documents)",
			"  • Cloud Functions (serverless Node.js)",
			"",
			"Layer 3: BLOCKCHAIN - Polygon Amoy Testnet",
			"  • Smart Contract (Solidity)",
			"  • Daily audit hash posting",
			"",
			"Layer 4: AI - Google Gemini 2.0 Flash",
			"  • RAG architecture for context",
		},
		"Explain bidirectional data flow, emphasize serverless nature")

	// Technology Stack
	b.content("Technology Stack",
		[]string{
			"Frontend: Flutter 3.24",
			"  Cross-platform (1 codebase for iOS + Android)",
			"",
			"Authentication: Firebase Auth",
			"  Built-in email, OAuth, phone OTP",
			"",
			"Database: Cloud Firestore",
			"  Real-time sync, offline support",
			"",
			"Blockchain: Polygon Amoy",
			"  Low gas fees ($0.004/tx vs Ethereum $50+)",
			"",
			"Smart Contract: Solidity 0.8.0",
			"  Ethereum-compatible, battle-tested",
			"",
			"AI: Google Gemini 2.0 Flash",
			"  Free tier, medical knowledge, 32K context",
			"",
			"Backend: Firebase Cloud Functions",
			"  Serverless, auto-scaling, Node.js",
		},
		"Cost efficiency: runs on Firebase free tier for testing, <$50/month for 10K users")

	// User Roles & Journeys
	b.twoColumn("User Roles & Journeys",
		[]string{
			"🔵 PATIENT",
			"• Sign up with email/Google",
			"• Complete health profile",
			"• Upload medical records",
			"• Generate QR code",
			"• Chat with AI Assistant",
			"• View audit trail",
			"",
			"🟢 DOCTOR",
			"• Sign up and submit credentials",
			"• Wait for admin verification",
			"• Scan patient QR for consent",
			"• View patient history",
			"• Chat with Clinical Assistant",
			"• Upload prescriptions/notes",
		},
		[]string{
			"🟣 ADMIN",
			"• Review doctor applications",
			"• Approve/reject after ML analysis",
			"• Monitor blockchain posting",
			"• View global audit logs",
			"• System health dashboard",
		},
		"Quick walkthrough of typical user flows")

	// Biometric App Lock
	b.content("Feature: Biometric App Lock",
		[]string{
			"Banking-Grade App Security",
			"",
			"TRIGGER CONDITIONS:",
			"  ✅ Cold Start (first launch after device restart)",
			"  ✅ Resume from Background (>60 seconds minimized)",
			"  ❌ Does NOT trigger on internal navigation",
			"",
			"PLATFORM SUPPORT:",
			"  • iOS: FaceID, TouchID",
			"  • Android: Fingerprint, Face Unlock",
			"  • Fallback: Device passcode",
			"",
			"SECURITY:",
			"  Biometric data NEVER leaves device (OS secure enclave)",
			"",
			"IMPLEMENTATION:",
			"  • Lifecycle management with AppLifecycleState",
			"  • Time-based background detection",
			"  • Platform-specific biometric APIs",
		},
		"Demo live biometric lock if possible on presentation machine")

	// QR-Based Consent
	b.content("Feature: QR-Based Consent",
		[]string{
			"Explicit Patient Consent Mechanism",
			"",
			"PROCESS FLOW:",
			"  Step 1: Patient generates Medical ID with QR code",
			"  Step 2: Doctor scans QR with in-app scanner",
			"  Step 3: System creates audit log entry",
			"  Step 4: Doctor gains READ access to patient records",
			"  Step 5: Audit entry included in blockchain post",
			"",
			"QR DATA:",
			"  Only contains patient UID (28-char Firebase ID)",
			"",
			"SECURITY:",
			"  Requires doctor authentication + QR physical proximity",
			"",
			"AUDIT LOGGING:",
			"  Every scan creates immutable audit trail",
			"  (action, timestamp, doctor ID, patient ID)",
		},
		"Contrast with password sharing (insecure, no audit)")

	// ML Kit Document Verification
	b.content("Feature: AI-Assisted Doctor Verification",
		[]string{
			"ML-Powered Credential Verification",
			"",
			"PROCESS:",
			"  1. Doctor uploads medical license image",
			"  2. ML Kit OCR extracts text on-device",
			"  3. AI analyzes:",
			"     • Name matching (vs profile name)",
			"     • Medical keywords detection",
			"     • License number patterns",
			"     • Document quality assessment",
			"  4. Confidence score generated (0.0 - 1.0)",
			"  5. Admin reviews with AI recommendations",
			"",
			"CONFIDENCE THRESHOLDS:",
			"  ✅ 0.9-1.0: High (green) - Fast-track approval",
			"  ✅ 0.7-0.9: Good (green) - Likely approved",
			"  ⚠️  0.4-0.7: Low (yellow) - Careful review",
			"  ❌ 0.0-0.4: Reject (red) - Cannot submit",
		},
		"Emphasize: AI ASSISTS admin, doesn't replace human judgment")

	// Blockchain Audit Trail
	b.content("Blockchain Audit Trail - Architecture",
		[]string{
			"Two-Layer Tamper-Evident System",
			"",
			"LAYER 1: Real-Time Hash Chain (Firestore)",
			"  • Every sensitive action creates audit entry",
			"  • Each entry links to previous via SHA-256 hash",
			"  • Breaking chain immediately detectable",
			"",
			"LAYER 2: Daily Blockchain Anchoring (Polygon)",
			"  • Midnight UTC: aggregate all day's entries",
			"  • Compute Merkle root (1000 entries → 1 hash)",
			"  • Post to public Polygon blockchain",
			"  • External, immutable proof",
			"",
			"WHY BOTH LAYERS?",
			"  • Real-time: Immediate logging (no delay)",
			"  • Blockchain: Prevents retroactive tampering",
			"    (even by Firebase admin)",
		},
		"Analogy: hash chain = sealed envelope, blockchain = public notarization")

	// Merkle Tree Explained
	b.content("Blockchain: Merkle Tree Explained",
		[]string{
			"Efficient Aggregation with Merkle Trees",
			"",
			"BOTTOM LEVEL (Leaves):",
			"  Hash(Audit #1) | Hash(Audit #2) | Hash(Audit #3) | Hash(Audit #4)",
			"",
			"LEVEL 2:",
			"  Hash(H1 + H2) | Hash(H3 + H4)",
			"",
			"LEVEL 3 (Root):",
			"  Hash(H(1+2) + H(3+4)) ← Posted to blockchain",
			"",
			"TAMPERING DETECTION:",
			"  • Change Audit #2 → H2 changes",
			"  • H2 changes → H(1+2) changes",
			"  • H(1+2) changes → Root changes",
			"  • Root on blockchain doesn't match → TAMPER DETECTED!",
			"",
			"EFFICIENCY:",
			"  Logarithmic scaling (1M entries → 20 levels)",
		},
		"Emphasize logarithmic efficiency for large datasets")

	// Smart Contract
	b.content("Blockchain: Smart Contract",
		[]string{
			"Solidity Smart Contract on Polygon",
			"",
			"CONTRACT STRUCTURE:",
			"  • AuditEntry struct (date, merkleRoot, count, timestamp)",
			"  • Array of all audit entries",
			"  • storeAuditHash() function",
			"  • getAudit() view function",
			"",
			"DEPLOYMENT:",
			"  • Contract Address: 0x56bBF330d155B30aAeb904B93D21EeBCb1f96aB6",
			"  • Network: Polygon Amoy Testnet (Chain ID: 80002)",
			"  • Explorer: amoy.polygonscan.com",
			"",
			"VALIDATION:",
			"  • Requires 64-character SHA-256 hash",
			"  • Immutable once posted",
			"  • Publicly verifiable",
			"",
			"COST:",
			"  ~$0.004 USD per transaction",
		},
		"Show actual transaction on PolygonScan if internet available")

	// AI RAG Architecture
	b.content("AI Clinical Assistants - RAG Architecture",
		[]string{
			"RAG: Retrieval Augmented Generation",
			"",
			"THE PROBLEM with Traditional LLMs:",
			"  • No knowledge of patient-specific records",
			"  • Hallucinates data",
			"  • Cannot answer 'What medications am I on?'",
			"",
			"RAG SOLUTION:",
			"  1. RETRIEVE patient records from Firestore",
			"  2. FORMAT into readable context (categorized)",
			"  3. AUGMENT AI prompt with records",
			"  4. GENERATE response grounded in actual data",
			"",
			"CONTEXT EXAMPLE:",
			"  LAB TESTS (15 records)",
			"    Record #1 - Jan 09, 2025",
			"    Type: Blood Test - CBC",
			"    Hemoglobin: 13.5 g/dL, WBC: 7000/μL",
			"",
			"BENEFITS:",
			"  • No hallucination (cites actual records)",
			"  • Up-to-date (fetches latest data)",
			"  • Context-aware (analyzes patterns)",
		},
		"Example: 'Is patient anemic?' → AI cites Record #1 with actual values")

	// AI Dual Personalities
	b.twoColumn("AI - Dual Personalities",
		[]string{
			"DOCTOR CLINICAL ASSISTANT",
			"",
			"Tone: Professional, concise",
			"",
			"Language: Medical terminology",
			"",
			"Citations: 'According to Record #3, Dec 15...'",
			"",
			"Focus: Data analysis, trends",
			"",
			"Example:",
			"'Mild anemia detected (Hgb 12.5, Record #2). Appears chronic based on previous CBC.'",
		},
		[]string{
			"PATIENT MEDICAL ASSISTANT",
			"",
			"Tone: Warm, conversational",
			"",
			"Language: Simple analogies",
			"",
			"Citations: 'Your Dec 15 blood test showed...'",
			"",
			"Focus: Education, reassurance",
			"",
			"Example:",
			"'Your Dec test shows mild anemia - your red blood cell count is a bit low. Think of it like fewer delivery trucks carrying oxygen. Common and treatable!'",
		},
		"Demo both if time permits (show different responses to same question)")

	// Security Pyramid
	b.content("Security Pyramid - Defense in Depth",
		[]string{
			"6 Layers of Security",
			"",
			"Layer 1 (Foundation): DEVICE BIOMETRIC",
			"  FaceID, TouchID, Fingerprint - Data never leaves device",
			"",
			"Layer 2: FIREBASE AUTHENTICATION",
			"  Email/password (bcrypt), Google OAuth, Phone OTP",
			"",
			"Layer 3: DATA ENCRYPTION",
			"  At-rest: AES-256 | In-transit: HTTPS/TLS 1.3",
			"",
			"Layer 4: ROLE-BASED ACCESS CONTROL",
			"  Firestore Security Rules (server-enforced)",
			"",
			"Layer 5: AUDIT LOGGING",
			"  Every action logged, hash chain prevents tampering",
			"",
			"Layer 6 (Apex): BLOCKCHAIN VERIFICATION",
			"  Daily Merkle root on Polygon - Public, immutable",
		},
		"Defense in depth: even if one layer breached, others protect data")

	// Firestore Security Rules
	b.content("Firestore Security Rules",
		[]string{
			"Server-Side Enforcement (Cannot Be Bypassed)",
			"",
			"MEDICAL RECORDS:",
			"  ✅ Patient can CRUD own records",
			"  ✅ Doctors can READ any patient's records",
			"  ✅ Doctors can WRITE records (prescriptions)",
			"",
			"AUDIT CHAIN:",
			"  ✅ Users can READ audit logs",
			"  ❌ Only Cloud Functions can WRITE",
			"",
			"CHAT HISTORY:",
			"  ✅ Patient can access own chat history",
			"  ❌ No one else (including doctors/admin)",
			"",
			"ATTACK PREVENTION:",
			"  • Patient tries to read another's record → DENIED",
			"  • User tries to change own role → DENIED",
			"  • Hacker modifies APK to write audit → DENIED",
			"",
			"Runs on Google's servers, not in app!",
		},
		"Stress this runs on Google's servers, cannot be bypassed by modified APK")

	// Performance & Optimization
	b.content("Performance & Optimization",
		[]string{
			"Optimization Strategies Implemented",
			"",
			"1. FIRESTORE QUERY OPTIMIZATION",
			"   • Indexing on timestamp field",
			"   • Pagination (limit 50 records per fetch)",
			"   • Offline persistence (instant load from cache)",
			"",
			"2. IMAGE COMPRESSION",
			"   Before: 5 MB JPEG → After: 800 KB JPEG (84% reduction)",
			"",
			"3. AI CONTEXT PRUNING",
			"   • Last 20 messages in conversation history",
			"   • Truncate OCR text to 500 chars per record",
			"   • Select 50 most relevant from >100 records",
			"",
			"4. APP SIZE REDUCTION",
			"   45 MB → 32 MB APK (28% reduction)",
			"",
			"BENCHMARKS:",
			"  • App launch: 1.2s (cold start)",
			"  • Record upload: 3-5s (5 MB PDF)",
			"  • AI response: 1-2s (average)",
			"  • QR scan: <1s",
		},
		"Emphasize real-world usability over theoretical performance")

	// Cost Analysis
	b.content("Cost Analysis",
		[]string{
			"Development vs Production Costs",
			"",
			"DEVELOPMENT (Testnet/Free):",
			"  All services: $0/month",
			"",
			"PRODUCTION (10,000 users):",
			"  • Firebase Auth: $0 (unlimited)",
			"  • Firestore: ~$30/month",
			"  • Cloud Storage: ~$10/month",
			"  • Cloud Functions: ~$5/month",
			"  • Polygon Blockchain: ~$1.50/month",
			"  • Gemini AI: ~$1/month",
			"  TOTAL: ~$47.50/month",
			"",
			"SCALING:",
			"  • 100 users: $0 (within free tier)",
			"  • 1,000 users: ~$15/month",
			"  • 10,000 users: ~$47/month",
			"  • 100,000 users: ~$250/month",
			"",
			"Per-user cost at 10K scale: $0.00475/month",
		},
		"Highlight serverless cost advantages (pay only for usage, not idle capacity)")

	// Testing & Validation
	b.content("Testing & Validation",
		[]string{
			"Multi-Layer Testing Strategy",
			"",
			"UNIT TESTS (Base - Most Tests):",
			"  • merkle_tree_service_test.dart",
			"  • blockchain_service_test.dart",
			"  • auth_service_test.dart",
			"",
			"INTEGRATION TESTS (Middle):",
			"  • Firestore Security Rules validation",
			"  • Cloud Functions local emulation",
			"  • API endpoint testing (Gemini AI)",
			"",
			"UI TESTS (Widget tests):",
			"  • Authentication screens",
			"  • QR code generation/scanning",
			"  • AI chat interface",
			"",
			"MANUAL TESTING (Top - Critical):",
			"  • End-to-end user journeys",
			"  • Biometric lock on real devices",
			"  • Blockchain transaction on testnet",
			"",
			"TEST COVERAGE: 70% overall",
		},
		"Tested with 5 beta users, 50+ documents, 15+ blockchain transactions")

	// Challenges & Solutions
	b.content("Challenges & Solutions",
		[]string{
			"CHALLENGE: Biometric lock triggered infinitely",
			"SOLUTION: Static state persistence across rebuilds",
			"",
			"CHALLENGE: Firestore quota exceeded during AI queries",
			"SOLUTION: Intelligent record selection (50 most relevant)",
			"",
			"CHALLENGE: Polygon gas price below minimum error",
			"SOLUTION: Fetch current gas prices, enforce 30 Gwei minimum",
			"",
			"CHALLENGE: OTP expired before user enters code",
			"SOLUTION: 5-minute countdown timer + resend button",
			"",
			"CHALLENGE: PDF parsing failed on some documents",
			"SOLUTION: Cloud Function fallback with pdf-parse library",
			"",
			"LEARNING OUTCOMES:",
			"  • Blockchain has hidden complexities",
			"  • LLM prompts require extensive iteration (50+ revisions)",
			"  • Mobile app lifecycle management is nuanced",
		},
		"Share one challenge in detail with team problem-solving narrative")

	// Future Enhancements
	b.content("Future Enhancements - Roadmap",
		[]string{
			"PHASE 1 (Months 1-2): Production Readiness",
			"  • Migrate to Polygon Mainnet",
			"  • Implement full HIPAA compliance",
			"  • Add encrypted backups",
			"  • iOS App Store + Google Play deployment",
			"",
			"PHASE 2 (Months 3-4): Feature Expansion",
			"  • Telemedicine integration (video consultations)",
			"  • Lab result auto-import (API integrations)",
			"  • Medication reminders (push notifications)",
			"  • Family account linking (parent-child records)",
			"",
			"PHASE 3 (Months 5-6): Advanced AI",
			"  • Multimodal Gemini (analyze X-rays, MRIs)",
			"  • Predictive health insights",
			"  • Symptom checker chatbot",
			"  • Drug interaction warnings",
			"",
			"LONG-TERM VISION:",
			"  • Government healthcare integration (ABDM)",
			"  • Insurance claim automation",
			"  • Clinical trial recruitment",
		},
		"Emphasize focus on India first (regulatory landscape, market need)")

	// Compliance & Regulations
	b.content("Compliance & Regulations",
		[]string{
			"✅ IMPLEMENTED:",
			"  • Data encryption (AES-256, TLS)",
			"  • Access control (role-based, audit logged)",
			"  • Patient consent mechanism (QR-based)",
			"  • Right to be Forgotten (account deletion)",
			"  • Minimal data collection",
			"",
			"⚠️ PARTIALLY IMPLEMENTED:",
			"  • HIPAA Compliance (technical controls ✅, legal BAA ⏳)",
			"  • GDPR Compliance (data privacy ✅, EU hosting ⏳)",
			"",
			"❌ FUTURE WORK:",
			"  • India Digital Personal Data Protection Act 2023",
			"  • Clinical validation studies",
			"  • Third-party security audit (penetration testing)",
			"",
			"LEGAL DISCLAIMER:",
			"  • ChainCare is a medical records repository, NOT diagnostic",
			"  • AI assistants are educational, not medical advice",
			"  • All clinical decisions must involve licensed physicians",
		},
		"Academic prototype; production requires legal consultation")

	// Competitive Analysis
	b.content("Competitive Analysis",
		[]string{
			"ChainCare vs Competitors",
			"",
			"                    ChainCare | Practo | Apollo 247 | Google Health",
			"Digital Records        ✅     |   ✅   |     ✅     |      ✅",
			"Blockchain Audit       ✅     |   ❌   |     ❌     |      ❌",
			"AI Assistant (Dual)    ✅     |   ❌   |     ❌     |      ⚠️",
			"QR-Based Consent       ✅     |   ❌   |     ❌     |      ❌",
			"OCR Upload             ✅     |   ❌   |     ✅     |      ❌",
			"Open Source            ✅     |   ❌   |     ❌     |      ❌",
			"Offline Support        ✅     |   ⚠️   |     ⚠️     |      ❌",
			"",
			"UNIQUE SELLING POINTS:",
			"  1. ONLY blockchain-verified audit trail in India",
			"  2. ONLY dual AI assistants (doctor + patient)",
			"  3. ONLY explicit QR-based consent mechanism",
			"  4. Open-source academic project",
		},
		"Acknowledge Practo/Apollo have telemedicine (we don't), but we have blockchain")

	// Project Timeline
	b.content("Project Timeline",
		[]string{
			"6-Month Development Journey",
			"",
			"MONTH 1 (July 2025): Planning & Research",
			"  Technology stack, Firebase setup, UI/UX mockups",
			"",
			"MONTH 2 (August 2025): Core Development",
			"  Authentication flows, document upload, database design",
			"",
			"MONTH 3 (September 2025): Advanced Features",
			"  Biometric integration, ML Kit OCR, blockchain, AI",
			"",
			"MONTH 4 (October 2025): Integration & Testing",
			"  Cross-module integration, security rules, beta testing",
			"",
			"MONTH 5 (November 2025): Polish & Optimization",
			"  UI/UX refinements, performance optimization, bug fixes",
			"",
			"MONTH 6 (December 2025): Final Prep",
			"  Presentation creation, live demo, documentation",
			"",
			"MILESTONES:",
			"  ✅ MVP (end of Month 2)",
			"  ✅ Feature-complete (end of Month 4)",
			"  ✅ Production-ready (end of Month 6)",
		},
		"Highlight parallel development (4 members working simultaneously)")

	// Team Contributions
	b.content("Team Contributions",
		[]string{
			"Balanced Module Ownership",
			"",
			"[Member 1]: Authentication & User Management",
			"  Files: 11 | LOC: 2,400 | Hours: 35",
			"  Features: Email/Google/Phone auth, Biometric lock, Profiles",
			"",
			"[Member 2]: Medical Records & Data Management",
			"  Files: 8 | LOC: 2,390 | Hours: 40",
			"  Features: Document upload, ML Kit OCR, QR system",
			"",
			"[Member 3]: Blockchain Audit Trail",
			"  Files: 6 | LOC: 2,510 | Hours: 45",
			"  Features: Smart contract, Merkle trees, Cloud Functions",
			"",
			"[Member 4]: AI Clinical Assistants",
			"  Files: 10 | LOC: 4,850 | Hours: 45",
			"  Features: RAG architecture, Dual AI, Admin dashboard",
			"",
			"TOTAL: 165 hours | 9,500+ lines of code",
			"",
			"Weekly sync meetings for cross-module testing",
		},
		"Each member presents their module for 5-7 minutes during this section")

	// Live Demo
	b.content("Live Demo",
		[]string{
			"Demo Flow (5-10 minutes)",
			"",
			"1. PATIENT JOURNEY (3 min):",
			"   • Launch app → Biometric lock",
			"   • Login → Patient dashboard",
			"   • Upload medical document",
			"   • Generate QR Medical ID",
			"   • Chat with AI: 'What is my hemoglobin level?'",
			"",
			"2. DOCTOR JOURNEY (3 min):",
			"   • Login as doctor",
			"   • Scan patient QR → Consent granted",
			"   • View patient records",
			"   • Chat with Clinical Assistant",
			"",
			"3. ADMIN JOURNEY (2 min):",
			"   • View pending doctor applications",
			"   • Check ML confidence score",
			"   • Approve doctor",
			"",
			"4. BLOCKCHAIN VERIFICATION (2 min):",
			"   • View transaction on PolygonScan",
			"   • Verify Merkle root matches",
		},
		"Backup plan: Pre-recorded video if live demo fails")

	// Technical Achievements
	b.content("Technical Achievements",
		[]string{
			"Notable Technical Accomplishments",
			"",
			"🏆 FULL-STACK DEVELOPMENT",
			"   Flutter mobile app (9,500 LOC)",
			"   Node.js backend (600 LOC)",
			"   Solidity smart contract (210 LOC)",
			"",
			"🏆 BLOCKCHAIN INTEGRATION",
			"   15+ successful transactions on Polygon Amoy",
			"   Merkle tree implementation from scratch",
			"",
			"🏆 AI/ML IMPLEMENTATION",
			"   RAG architecture for context-aware AI",
			"   700+ lines of prompt engineering",
			"",
			"🏆 SECURITY BEST PRACTICES",
			"   6-layer defense-in-depth",
			"   Server-side Firestore Security Rules",
			"",
			"🏆 PERFORMANCE OPTIMIZATION",
			"   28% app size reduction",
			"   84% image compression",
			"",
			"🏆 PRODUCTION-GRADE CODE",
			"   Comprehensive error handling",
			"   Logging and monitoring",
		},
		"Position as production-ready, not just academic proof-of-concept")

	// Learnings & Takeaways
	b.content("Learnings & Takeaways",
		[]string{
			"Key Learnings from 6-Month Journey",
			"",
			"💡 TECHNICAL INSIGHTS:",
			"  • Blockchain requires deep protocol understanding",
			"  • LLMs need extensive prompt iteration (50+ revisions)",
			"  • Mobile app lifecycle is complex",
			"  • Firebase free tier is generous but requires design foresight",
			"",
			"💡 TEAMWORK:",
			"  • Clear module boundaries enable parallel development",
			"  • Weekly integration meetings prevent conflicts",
			"  • Documentation is critical for team collaboration",
			"",
			"💡 PROBLEM-SOLVING:",
			"  • Always have a backup plan",
			"  • Error messages should be user-friendly",
			"  • Testing on real devices reveals hidden issues",
			"",
			"💡 HEALTHCARE DOMAIN:",
			"  • Medical jargon intimidating for patients",
			"  • Doctors value precision over friendliness",
			"  • Regulatory compliance is complex",
		},
		"Share specific 'aha moment' or breakthrough during development")

	// Conclusion & Impact
	b.content("Conclusion & Impact",
		[]string{
			"ChainCare: Bridging Healthcare & Technology",
			"",
			"WHAT WE BUILT:",
			"  ✅ Production-grade mobile app (iOS + Android)",
			"  ✅ Blockchain-secured audit trail (Polygon)",
			"  ✅ Dual AI assistants (Doctor + Patient)",
			"  ✅ Comprehensive security (6 layers)",
			"",
			"REAL-WORLD IMPACT:",
			"  For Patients: Centralized records, AI education, data control",
			"  For Doctors: AI insights, verified credentials, transparency",
			"  For Healthcare: Tamper-proof records, reduced fraud",
			"",
			"BY THE NUMBERS:",
			"  • 9,500+ lines of code",
			"  • 6 cutting-edge technologies",
			"  • 4 team members collaborating",
			"  • 165 hours of development",
			"",
			"VISION:",
			"  'Empowering patients and doctors with secure, intelligent,",
			"   and transparent medical record management through",
			"   blockchain and AI.'",
		},
		"End on inspirational note about technology improving healthcare accessibility")

	// Q&A
	b.content("Questions & Answers",
		[]string{
			"Thank You!",
			"",
			"We're ready for your questions.",
			"",
			"",
			"ANTICIPATED QUESTIONS:",
			"",
			"Q: Why Polygon instead of Ethereum?",
			"A: Cost - Polygon $0.004/tx vs Ethereum $50-200/tx",
			"",
			"Q: How do you handle HIPAA compliance?",
			"A: Technical controls implemented, legal BAA needed for production",
			"",
			"Q: Can blockchain be hacked?",
			"A: Polygon Mainnet has $7B+ locked, extremely secure",
			"",
			"Q: What if Firebase goes down?",
			"A: Offline persistence - app works from cache",
			"",
			"Q: How accurate is the AI?",
			"A: Educational tool, NOT diagnostic. Doctors make all decisions.",
		},
		"Stay calm, if unsure say 'Great question for further research' rather than guessing")

	return b.finish()
}
