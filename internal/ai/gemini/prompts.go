package gemini

// ExtractionPrompt instructs the model to read a medical claim document and
// return the structured record the adjudication engine consumes. The response
// must be a single JSON object; missing fields are null.
const ExtractionPrompt = `Analyze this medical document (Bill, Prescription, or Report).
Extract the data strictly into the following JSON format.
If a field is not visible, use null.

schema = {
    "document_type": "BILL" | "PRESCRIPTION" | "REPORT" | "UNKNOWN",
    "patient_name": str,
    "date_of_service": "YYYY-MM-DD",
    "doctor_name": str,
    "doctor_reg_no": str, # Format: STATE/NUM/YEAR
    "diagnosis": str,
    "medicines": [str],
    "total_claimed_amount": float,
    "line_items": [{"item": str, "cost": float}],
    "hospital_name": str,
    "is_handwritten": bool,
    "confidence_score": float # 0.0 to 1.0 based on clarity/legibility
}

CRITICAL: Evaluate "medical_necessity_check".
If the medicines/tests do not match the diagnosis (e.g., "Cast" for "Fever",
or "Whitening" for "Cavity"), set it to "FAIL" and explain in
"medical_necessity_reason". Otherwise set it to "PASS".

Your response must start with { and end with }.`
