package generator

// Fixed synthetic network: a station roster plus corridors that bias
// generated routes toward realistic lines. Corridor stations not on
// the roster still enter the dataset through the stop sequences.

var stationRoster = []string{
    "Delhi", "Agra", "Jaipur", "Lucknow", "Varanasi", "Patna", "Kolkata",
    "Ranchi", "Bhubaneswar", "Visakhapatnam",
    "Mumbai", "Thane", "Pune", "Surat", "Vadodara", "Ahmedabad", "Rajkot",
    "Nagpur", "Bhopal", "Indore",
    "Hyderabad", "Vijayawada",
    "Bangalore", "Mysuru", "Mangalore", "Hubli", "Belagavi",
    "Chennai", "Tirupati", "Vellore", "Coimbatore", "Salem", "Erode", "Trichy", "Madurai",
    "Kochi", "Thrissur", "Calicut", "Trivandrum",
}

var corridors = [][]string{
    // North-west to west coast
    {"Delhi", "Jaipur", "Ahmedabad", "Surat", "Mumbai", "Thane", "Pune"},
    // North-central-west
    {"Delhi", "Agra", "Gwalior", "Bhopal", "Indore", "Vadodara", "Ahmedabad"},
    // North-east
    {"Delhi", "Agra", "Lucknow", "Varanasi", "Patna", "Kolkata"},
    // East coast, north to south
    {"Kolkata", "Bhubaneswar", "Visakhapatnam", "Vijayawada", "Chennai", "Tirupati"},
    // South spine
    {"Mangalore", "Mysuru", "Bangalore", "Salem", "Erode", "Coimbatore", "Trichy", "Madurai", "Tirupati", "Chennai"},
    // Konkan and west coast
    {"Mumbai", "Thane", "Surat", "Vadodara", "Ahmedabad", "Rajkot"},
    // Deccan
    {"Nagpur", "Bhopal", "Indore", "Vadodara", "Surat", "Mumbai"},
    // Hyderabad connectors
    {"Hyderabad", "Vijayawada", "Chennai", "Tirupati"},
    {"Hyderabad", "Nagpur", "Bhopal", "Indore"},
    // Karnataka interior
    {"Belagavi", "Hubli", "Bangalore", "Mysuru", "Mangalore"},
}

var nameAdjectives = []string{
    "Viper", "Crimson", "Golden", "Silver", "Emerald", "Sapphire", "Ruby",
    "Coral", "Ivory", "Amber", "Indigo", "Pearl", "Scarlet", "Titan", "Rapid",
    "Royal", "Eastern", "Western", "Northern", "Southern",
}

var nameNouns = []string{
    "Express", "Mail", "Link", "Shatabdi", "Duronto", "Jan Shatabdi",
    "Superfast", "Intercity", "Rajdhani", "Garib Rath", "Vande Bharat",
}
