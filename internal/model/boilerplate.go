package model

// Process-wide boilerplate applied to every new quote. The texts are the
// company's standard Spanish-language terms.

// DefaultQuoteObservations is the default observations block.
const DefaultQuoteObservations = `- Cliente suministra todos los accesos requeridos de altura, escaleras, manlift, andamios, etc.
- No incluye recargo de trabajo nocturno, ni presencia de personal siso, de ser necesario o requerido, el costo será asumido por el cliente.
- Tiempo de trabajo estimado: Según cronograma.
- No incluye canaletas, tuberías y puntos de corriente.`

// DefaultCommercialConditions is the default commercial conditions block.
const DefaultCommercialConditions = `Moneda: Pesos Colombianos (COP)
Forma de pago: 50% Anticipo - 50% Entrega
Vigencia: 15 días calendario
Garantía: Un (1) año por defectos de fábrica
Entrega: Según disponibilidad técnica
Obras Civiles: No incluidas
Infraestructura: Suministrada por el cliente`

// BankInfo is the payment account line printed on quote documents.
const BankInfo = "BANCOLOMBIA N° CUENTA AHORRO: 67800017190 - SITEC SOLUCIONES TECNOLOGICAS INTEGRALES SAS NIT 901806525-3"
